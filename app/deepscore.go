package app

import (
	"context"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"hirescope/ports"
)

// BehavioralTraits are coarse trait estimates surfaced alongside the
// deep score. Values are fixed priors until enough signal exists to
// infer them per answer.
type BehavioralTraits struct {
	Ownership  float64 `json:"ownership"`
	Teamwork   float64 `json:"teamwork"`
	Leadership float64 `json:"leadership"`
}

// DeepScore is the secondary per-answer analysis layered on top of the
// rubric evaluation. All values are 0-100.
type DeepScore struct {
	GrammarQuality   float64          `json:"grammar_quality"`
	LogicalReasoning float64          `json:"logical_reasoning"`
	ExplanationDepth float64          `json:"explanation_depth"`
	Behavioral       BehavioralTraits `json:"behavioral_traits"`
	Consistency      float64          `json:"consistency"`
}

// DeepScorer computes deep scores, using embeddings to compare the
// answer against the question's ideal keywords when an embedder is
// available. Without one it degrades to length-based baselines.
type DeepScorer struct {
	embedder ports.EmbeddingPort
}

// NewDeepScorer creates a deep scorer; embedder may be nil.
func NewDeepScorer(embedder ports.EmbeddingPort) *DeepScorer {
	return &DeepScorer{embedder: embedder}
}

// Score analyzes one answer. Embedding failures are silent: the
// baseline values stand and the interview continues.
func (d *DeepScorer) Score(ctx context.Context, answer, ideal string) DeepScore {
	wordCount := len(strings.Fields(answer))

	score := DeepScore{
		GrammarQuality:   60,
		LogicalReasoning: 60,
		ExplanationDepth: math.Min(100, float64(wordCount)),
		Behavioral:       BehavioralTraits{Ownership: 50, Teamwork: 50, Leadership: 40},
		Consistency:      80,
	}
	if wordCount > 10 {
		score.GrammarQuality = 80
	}

	if d.embedder == nil || ideal == "" {
		return score
	}

	answerVec, err := d.embedder.Embed(ctx, answer)
	if err != nil {
		return score
	}
	idealVec, err := d.embedder.Embed(ctx, ideal)
	if err != nil {
		return score
	}
	if len(answerVec) == 0 || len(idealVec) == 0 {
		return score
	}

	sim := cosineSimilarity(answerVec, idealVec)
	score.LogicalReasoning = math.Min(100, math.Round(sim*100))
	score.ExplanationDepth = math.Min(100, math.Round(float64(wordCount)/200*100)+math.Round(sim*50))
	score.Consistency = math.Round(sim * 100)
	return score
}

// cosineSimilarity compares vectors truncated to the shorter length.
// Zero-magnitude input yields 0 rather than NaN.
func cosineSimilarity(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	a, b = a[:n], b[:n]

	dot := floats.Dot(a, b)
	normA := math.Sqrt(floats.Dot(a, a))
	normB := math.Sqrt(floats.Dot(b, b))
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}
