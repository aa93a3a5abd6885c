package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirescope/adapters/llm/heuristic"
	"hirescope/domain/interview"
	apperrors "hirescope/internal/errors"
	"hirescope/internal/testkit"
)

func newTestOrchestrator(t *testing.T, opts ...Option) *Orchestrator {
	t.Helper()
	deps := Deps{
		Bank:     testkit.FixtureBank(),
		Fallback: heuristic.NewScorer(),
	}
	opts = append([]Option{WithShuffleSeed(1)}, opts...)
	return NewOrchestrator(deps, opts...)
}

func TestStartUnknownRole(t *testing.T) {
	o := newTestOrchestrator(t)
	_, err := o.Start("Astronaut")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidRole))
	assert.Equal(t, StateIdle, o.State())
}

func TestStartAsksBankQuestion(t *testing.T) {
	o := newTestOrchestrator(t)
	first, err := o.Start("Software Engineer")
	require.NoError(t, err)

	texts := map[string]bool{}
	for _, item := range testkit.FixtureBank().Items("Software Engineer") {
		texts[item.Text] = true
	}
	assert.True(t, texts[first], "first question %q must come from the bank", first)

	transcript := o.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, interview.SpeakerSystem, transcript[0].Speaker)
	assert.Equal(t, first, transcript[0].Text)
}

func TestReceiveAnswerBeforeStart(t *testing.T) {
	o := newTestOrchestrator(t)
	_, err := o.ReceiveAnswer(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotInProgress))
}

func TestReceiveAnswerDegradesToFallback(t *testing.T) {
	deps := Deps{
		Bank:     testkit.FixtureBank(),
		Oracle:   &testkit.FailingScorer{},
		Fallback: heuristic.NewScorer(),
	}
	o := NewOrchestrator(deps, WithShuffleSeed(1))
	_, err := o.Start("Software Engineer")
	require.NoError(t, err)

	out, err := o.ReceiveAnswer(context.Background(), "I would use indexes and explain plan to optimize the query.")
	require.NoError(t, err)

	assert.True(t, out.Evaluation.Fallback)
	assert.Equal(t, 62.0, out.Evaluation.Score)
	assert.Equal(t, interview.RecommendConsider, out.Evaluation.Recommendation)
	// 11 words: lengthScore 4.4; 4.4*0.3 + 12*0.35 + 20*0.35.
	assert.InDelta(t, 12.52, out.Metrics.Confidence, 0.01)
}

func TestOracleEvaluationUsedWhenHealthy(t *testing.T) {
	oracle := &testkit.ScriptedScorer{Evaluations: []interview.Evaluation{testkit.Eval(88, interview.RecommendHire)}}
	deps := Deps{
		Bank:     testkit.FixtureBank(),
		Oracle:   oracle,
		Fallback: heuristic.NewScorer(),
	}
	o := NewOrchestrator(deps, WithShuffleSeed(1))
	_, err := o.Start("Software Engineer")
	require.NoError(t, err)

	out, err := o.ReceiveAnswer(context.Background(), "A thorough answer.")
	require.NoError(t, err)
	assert.Equal(t, 88.0, out.Evaluation.Score)
	assert.False(t, out.Evaluation.Fallback)
	assert.Equal(t, 1, oracle.Calls)
}

func TestFollowupTakesPrecedence(t *testing.T) {
	deps := Deps{
		Bank:      testkit.FixtureBank(),
		Fallback:  heuristic.NewScorer(),
		Followups: &testkit.ScriptedFollowups{Queue: []string{"Can you walk through the eviction policy in detail?"}},
	}
	o := NewOrchestrator(deps, WithShuffleSeed(1))
	_, err := o.Start("Software Engineer")
	require.NoError(t, err)

	out, err := o.ReceiveAnswer(context.Background(), "We used an LRU cache.")
	require.NoError(t, err)
	assert.Equal(t, "Can you walk through the eviction policy in detail?", out.NextQuestion)
	assert.False(t, out.Complete)
}

func TestShortFollowupDiscarded(t *testing.T) {
	deps := Deps{
		Bank:      testkit.FixtureBank(),
		Fallback:  heuristic.NewScorer(),
		Followups: &testkit.ScriptedFollowups{Queue: []string{"Why?"}},
	}
	o := NewOrchestrator(deps, WithShuffleSeed(1))
	_, err := o.Start("Software Engineer")
	require.NoError(t, err)

	out, err := o.ReceiveAnswer(context.Background(), "We used an LRU cache.")
	require.NoError(t, err)
	assert.NotEqual(t, "Why?", out.NextQuestion)

	texts := map[string]bool{}
	for _, item := range testkit.FixtureBank().Items("Software Engineer") {
		texts[item.Text] = true
	}
	assert.True(t, texts[out.NextQuestion])
}

func TestNeverRepeatsQuestions(t *testing.T) {
	o := newTestOrchestrator(t)
	first, err := o.Start("Software Engineer")
	require.NoError(t, err)

	seen := map[string]int{first: 1}
	for i := 0; i < 3; i++ {
		out, err := o.ReceiveAnswer(context.Background(), "An answer that moves the interview forward a little bit.")
		require.NoError(t, err)
		require.False(t, out.Complete)
		seen[out.NextQuestion]++
	}
	for text, count := range seen {
		assert.Equal(t, 1, count, "question %q repeated", text)
	}
}

func TestQueueExhaustionTerminalTurn(t *testing.T) {
	o := newTestOrchestrator(t)
	_, err := o.Start("Software Engineer")
	require.NoError(t, err)

	// Fixture holds 4 questions; the 4th answer exhausts the queue.
	var out AnswerOutcome
	for i := 0; i < 4; i++ {
		out, err = o.ReceiveAnswer(context.Background(), "A reasonable answer.")
		require.NoError(t, err)
	}
	assert.True(t, out.Complete)
	assert.Equal(t, CompleteMessage, out.NextQuestion)

	before := len(o.Transcript())
	out, err = o.ReceiveAnswer(context.Background(), "Anything else?")
	require.NoError(t, err)
	assert.True(t, out.Complete)
	assert.Equal(t, CompleteMessage, out.NextQuestion)
	// Terminal system turn is appended once; later answers only add
	// the candidate turn.
	assert.Equal(t, before+1, len(o.Transcript()))
}

func TestEndAggregatesCachedEvaluations(t *testing.T) {
	oracle := &testkit.ScriptedScorer{Evaluations: []interview.Evaluation{
		testkit.Eval(80, interview.RecommendHire),
		testkit.Eval(70, interview.RecommendConsider),
	}}
	deps := Deps{
		Bank:     testkit.FixtureBank(),
		Oracle:   oracle,
		Fallback: heuristic.NewScorer(),
	}
	o := NewOrchestrator(deps, WithShuffleSeed(1))
	_, err := o.Start("Software Engineer")
	require.NoError(t, err)

	_, err = o.ReceiveAnswer(context.Background(), "First answer.")
	require.NoError(t, err)
	_, err = o.ReceiveAnswer(context.Background(), "Second answer.")
	require.NoError(t, err)

	report, err := o.End()
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", report.Role)
	assert.InDelta(t, 75.0, report.TotalScore, 0.0001)
	assert.Equal(t, interview.RecommendHire, report.Decision)
	require.Len(t, report.Items, 2)
	assert.Equal(t, 80.0, report.Items[0].Evaluation.Score)
}

func TestEndTwice(t *testing.T) {
	o := newTestOrchestrator(t)
	_, err := o.Start("Software Engineer")
	require.NoError(t, err)

	_, err = o.End()
	require.NoError(t, err)

	_, err = o.End()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeAlreadyEnded))
}

func TestEndBeforeStart(t *testing.T) {
	o := newTestOrchestrator(t)
	_, err := o.End()
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotInProgress))
}

func TestSeededShuffleReproducible(t *testing.T) {
	a := newTestOrchestrator(t)
	b := newTestOrchestrator(t)

	firstA, err := a.Start("Software Engineer")
	require.NoError(t, err)
	firstB, err := b.Start("Software Engineer")
	require.NoError(t, err)
	assert.Equal(t, firstA, firstB)
}
