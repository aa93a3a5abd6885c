// Package adaptive holds the pure policy functions that steer an
// interview: the confidence estimate derived from each evaluated
// answer, and the selector that chooses the next question from the
// remaining pool.
package adaptive

import (
	"math"
	"strings"

	"hirescope/domain/interview"
)

// defaultDimension substitutes for rubric dimensions missing from a
// breakdown; matches the mid-range value the live widgets assume.
const defaultDimension = 12.0

// NoMoreQuestions is the sentinel text returned by PickNext when the
// pool is exhausted.
const NoMoreQuestions = "No more questions"

// ComputeConfidence maps an answer's length and its rubric breakdown
// to a 0-100 confidence score. Longer answers with good clarity and
// technical depth raise confidence. Pure: all inputs are defaulted,
// the result is always clamped.
func ComputeConfidence(answer string, breakdown map[string]float64) float64 {
	lengthScore := math.Min(float64(len(strings.Fields(answer)))/50.0, 1.0) * 20
	clarity := dimension(breakdown, interview.DimClarity)
	technical := dimension(breakdown, interview.DimTechnicalDepth)
	conf := lengthScore*0.3 + clarity*0.35 + technical*0.35
	return math.Max(0, math.Min(100, conf))
}

func dimension(breakdown map[string]float64, key string) float64 {
	if breakdown == nil {
		return defaultDimension
	}
	if v, ok := breakdown[key]; ok {
		return v
	}
	return defaultDimension
}

// PickNext chooses the next question from pool given the set of
// already-asked question texts and the live metrics.
//
// Selection is greedy and order-sensitive, with strict precedence:
// a topic-steering match beats difficulty-filtered order, which beats
// the raw unfiltered pool. The difficulty gate admits only tiers the
// candidate's confidence supports. When everything is exhausted a
// sentinel item with text NoMoreQuestions is returned.
func PickNext(pool []interview.QuestionItem, asked map[string]bool, metrics interview.Metrics) interview.QuestionItem {
	filtered := make([]interview.QuestionItem, 0, len(pool))
	for _, item := range pool {
		if asked[item.Text] {
			continue
		}
		if item.Difficulty == "" {
			item.Difficulty = interview.DifficultyIntermediate
		}
		filtered = append(filtered, item)
	}

	allowed := allowedTiers(metrics.Confidence)
	candidates := make([]interview.QuestionItem, 0, len(filtered))
	for _, item := range filtered {
		if allowed[item.Difficulty] {
			candidates = append(candidates, item)
		}
	}

	// Topic steering overrides the gate's ordering but not its
	// membership: only gated candidates are scanned.
	if len(metrics.MissedTopics) > 0 {
		for _, item := range candidates {
			if item.IdealAnswer == "" {
				continue
			}
			ideal := strings.ToLower(item.IdealAnswer)
			for _, topic := range metrics.MissedTopics {
				if topic != "" && strings.Contains(ideal, strings.ToLower(topic)) {
					return item
				}
			}
		}
	}

	if len(candidates) > 0 {
		return candidates[0]
	}
	if len(filtered) > 0 {
		return filtered[0]
	}
	return interview.QuestionItem{Text: NoMoreQuestions, Difficulty: interview.DifficultyBeginner}
}

// allowedTiers gates difficulty on live confidence: struggling
// candidates see easier questions, strong candidates harder ones.
func allowedTiers(confidence float64) map[interview.Difficulty]bool {
	switch {
	case confidence < 40:
		return map[interview.Difficulty]bool{
			interview.DifficultyBeginner: true,
		}
	case confidence < 70:
		return map[interview.Difficulty]bool{
			interview.DifficultyBeginner:     true,
			interview.DifficultyIntermediate: true,
		}
	default:
		return map[interview.Difficulty]bool{
			interview.DifficultyIntermediate: true,
			interview.DifficultyExpert:       true,
		}
	}
}
