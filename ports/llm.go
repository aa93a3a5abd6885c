package ports

import "context"

// LLMClient interface for chat-completion providers
type LLMClient interface {
	ChatCompletion(ctx context.Context, model string, prompt string, maxTokens int) (string, error)
}
