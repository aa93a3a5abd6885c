// Package heuristic provides the deterministic local scorer used
// whenever the LLM oracle is unreachable. It is the only fully
// deterministic scoring path and the one exercised by offline tests.
package heuristic

import (
	"context"
	"strings"

	"hirescope/domain/interview"
)

// technicalTerms raise the technical_depth dimension when any appears
// in the answer.
var technicalTerms = []string{"design", "optimize", "sql", "api", "model"}

// starKeywords detect STAR-method structure (Situation, Task, Action,
// Result).
var starKeywords = []string{"situation", "task", "action", "result"}

// Scorer implements ports.ScoringPort with fixed rules. Its score
// always equals the sum of the four breakdown dimensions.
type Scorer struct{}

// NewScorer creates the fallback scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Evaluate scores the answer with keyword and length rules. It never
// fails; the error return only satisfies the port.
func (s *Scorer) Evaluate(ctx context.Context, question, answer, role string) (interview.Evaluation, error) {
	lower := strings.ToLower(answer)

	relevance := 10.0
	if len(strings.Fields(answer)) > 10 {
		relevance = 20
	}

	technical := 12.0
	if containsAny(lower, technicalTerms) {
		technical = 20
	}

	clarity := 12.0
	if sentenceCount(answer) > 1 {
		clarity = 20
	}

	structure := 10.0
	if containsAny(lower, starKeywords) {
		structure = 20
	}

	score := relevance + technical + clarity + structure

	recommendation := interview.RecommendReject
	if score > 50 {
		recommendation = interview.RecommendConsider
	}

	return interview.Evaluation{
		Score: score,
		Breakdown: map[string]float64{
			interview.DimRelevance:      relevance,
			interview.DimTechnicalDepth: technical,
			interview.DimClarity:        clarity,
			interview.DimStructure:      structure,
		},
		Strengths:      []string{"Provided some technical terms"},
		Weaknesses:     []string{"Needs clearer structure and more depth"},
		Recommendation: recommendation,
		Fallback:       true,
	}, nil
}

// sentenceCount counts non-empty segments split on '.'. A single
// sentence with a trailing period counts as one.
func sentenceCount(answer string) int {
	count := 0
	for _, seg := range strings.Split(answer, ".") {
		if strings.TrimSpace(seg) != "" {
			count++
		}
	}
	return count
}

func containsAny(s string, substrings []string) bool {
	for _, substr := range substrings {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
