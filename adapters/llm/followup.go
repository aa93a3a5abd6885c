package llm

import (
	"context"
	"strings"
)

// followupMaxTokens keeps follow-ups short; one question, not an essay.
const followupMaxTokens = 100

// FollowupGenerator implements ports.FollowupPort over a
// chat-completion LLM. A keyless configuration generates nothing and
// the interview simply advances through the bank.
type FollowupGenerator struct {
	config Config
	client *OpenAIClient
}

// NewFollowupGenerator creates a follow-up generator adapter
func NewFollowupGenerator(config Config) *FollowupGenerator {
	return &FollowupGenerator{config: config, client: NewOpenAIClient(config)}
}

// Followup returns one deepening question for the given exchange, or
// "" when no credential is configured or the generation fails.
func (g *FollowupGenerator) Followup(ctx context.Context, question, answer, role string) (string, error) {
	if g.config.APIKey == "" {
		return "", nil
	}

	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	prompt := buildFollowupPrompt(question, answer, role)
	resp, err := g.client.ChatCompletion(ctx, g.config.Model, prompt, followupMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp), nil
}
