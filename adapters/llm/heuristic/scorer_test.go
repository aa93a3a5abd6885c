package heuristic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirescope/domain/interview"
)

func TestEvaluateKeywordAnswer(t *testing.T) {
	// 13 words, contains "optimize", single sentence, no STAR keywords.
	answer := "I would use indexes and explain plan to optimize the query."

	eval, err := NewScorer().Evaluate(context.Background(), "How do you optimize a slow SQL query?", answer, "Software Engineer")
	require.NoError(t, err)

	assert.Equal(t, 20.0, eval.Breakdown[interview.DimRelevance])
	assert.Equal(t, 20.0, eval.Breakdown[interview.DimTechnicalDepth])
	assert.Equal(t, 12.0, eval.Breakdown[interview.DimClarity])
	assert.Equal(t, 10.0, eval.Breakdown[interview.DimStructure])
	assert.Equal(t, 62.0, eval.Score)
	assert.Equal(t, interview.RecommendConsider, eval.Recommendation)
	assert.True(t, eval.Fallback)
}

func TestEvaluateShortVagueAnswer(t *testing.T) {
	eval, err := NewScorer().Evaluate(context.Background(), "Tell me about caching.", "I don't know", "Software Engineer")
	require.NoError(t, err)

	assert.Equal(t, 44.0, eval.Score)
	assert.Equal(t, interview.RecommendReject, eval.Recommendation)
}

func TestEvaluateStructuredAnswer(t *testing.T) {
	answer := "The situation was a failing deploy. My task was to restore service. " +
		"The action I took was rolling back and adding a canary. The result was zero downtime."

	eval, err := NewScorer().Evaluate(context.Background(), "Describe an incident you handled.", answer, "DevOps Engineer")
	require.NoError(t, err)

	assert.Equal(t, 20.0, eval.Breakdown[interview.DimRelevance])
	assert.Equal(t, 20.0, eval.Breakdown[interview.DimClarity])
	assert.Equal(t, 20.0, eval.Breakdown[interview.DimStructure])
	assert.Equal(t, interview.RecommendConsider, eval.Recommendation)
}

func TestScoreEqualsBreakdownSum(t *testing.T) {
	answers := []string{
		"",
		"Yes.",
		"I designed an API. It used SQL. The model scaled well beyond expectations for the team.",
		"Short answer without keywords",
	}
	for _, answer := range answers {
		eval, err := NewScorer().Evaluate(context.Background(), "q", answer, "r")
		require.NoError(t, err)

		sum := 0.0
		for _, v := range eval.Breakdown {
			sum += v
		}
		assert.Equal(t, sum, eval.Score, "answer %q", answer)
	}
}

func TestCaseInsensitiveKeywords(t *testing.T) {
	eval, err := NewScorer().Evaluate(context.Background(), "q", "OPTIMIZE", "r")
	require.NoError(t, err)
	assert.Equal(t, 20.0, eval.Breakdown[interview.DimTechnicalDepth])
}
