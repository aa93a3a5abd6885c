package llm

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"hirescope/domain/interview"
	apperrors "hirescope/internal/errors"
	"hirescope/ports"
)

// Oracle implements ports.ScoringPort over a chat-completion LLM.
// It never falls back itself; the orchestrator owns the degrade path
// so offline tests exercise exactly one fallback implementation.
type Oracle struct {
	config Config
	client ports.LLMClient
}

// NewOracle creates a scoring oracle adapter
func NewOracle(config Config, client ports.LLMClient) *Oracle {
	return &Oracle{config: config, client: client}
}

// evaluationPayload mirrors the JSON shape the evaluation prompt asks for.
type evaluationPayload struct {
	Score          float64            `json:"score"`
	Breakdown      map[string]float64 `json:"breakdown"`
	Strengths      []string           `json:"strengths"`
	Weaknesses     []string           `json:"weaknesses"`
	Recommendation string             `json:"recommendation"`
}

// Evaluate asks the LLM to judge the answer and normalizes the reply
// into an Evaluation. Missing credential yields ORACLE_UNAVAILABLE;
// transport failures and malformed replies yield ORACLE_ERROR.
func (o *Oracle) Evaluate(ctx context.Context, question, answer, role string) (interview.Evaluation, error) {
	if o.config.APIKey == "" {
		return interview.Evaluation{}, apperrors.OracleUnavailable("scoring oracle has no API key")
	}

	if o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	prompt := buildEvaluationPrompt(question, answer, role)
	raw, err := o.client.ChatCompletion(ctx, o.config.Model, prompt, o.config.MaxTokens)
	if err != nil {
		return interview.Evaluation{}, apperrors.OracleError(err)
	}

	var payload evaluationPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return interview.Evaluation{}, apperrors.OracleError(err)
	}

	return normalize(payload), nil
}

// normalize clamps the oracle's reply into the evaluation contract:
// the four known dimensions in [0,25], score in [0,100], and a valid
// recommendation.
func normalize(payload evaluationPayload) interview.Evaluation {
	breakdown := make(map[string]float64, 4)
	for _, dim := range interview.Dimensions() {
		breakdown[dim] = clamp(payload.Breakdown[dim], 0, 25)
	}

	eval := interview.Evaluation{
		Score:          clamp(payload.Score, 0, 100),
		Breakdown:      breakdown,
		Strengths:      payload.Strengths,
		Weaknesses:     payload.Weaknesses,
		Recommendation: interview.Recommendation(payload.Recommendation),
	}

	switch eval.Recommendation {
	case interview.RecommendHire, interview.RecommendConsider, interview.RecommendReject:
	default:
		eval.Recommendation = interview.Decide(eval.Score)
	}
	return eval
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// stripCodeFence extracts the JSON body from a response that may wrap
// it in a markdown code block.
func stripCodeFence(s string) string {
	if strings.Contains(s, "```json") {
		start := strings.Index(s, "```json")
		end := strings.Index(s[start+7:], "```")
		if end > 0 {
			return strings.TrimSpace(s[start+7 : start+7+end])
		}
	} else if strings.Contains(s, "```") {
		start := strings.Index(s, "```")
		end := strings.Index(s[start+3:], "```")
		if end > 0 {
			return strings.TrimSpace(s[start+3 : start+3+end])
		}
	}
	return strings.TrimSpace(s)
}
