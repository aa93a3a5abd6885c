// Package app wires the domain policies and the outbound ports into
// the interview engine: the session orchestrator state machine and the
// deep-scoring service.
package app

import (
	"context"
	"math/rand"
	"time"

	"hirescope/domain/adaptive"
	"hirescope/domain/bank"
	"hirescope/domain/interview"
	"hirescope/internal"
	apperrors "hirescope/internal/errors"
	"hirescope/ports"
)

// CompleteMessage is the terminal system turn appended once the
// question queue is exhausted.
const CompleteMessage = "Interview complete. Press 'End Interview' to see the report."

// followupMinLength discards degenerate follow-ups; anything shorter
// is noise, not a question.
const followupMinLength = 10

// initialConfidence seeds the metrics before the first answer has
// been evaluated.
const initialConfidence = 60.0

// State is the orchestrator lifecycle state.
type State int

const (
	StateIdle State = iota
	StateInProgress
	StateEnded
)

// Deps holds everything an Orchestrator needs. Oracle and Fallback
// are both ScoringPorts; the oracle may fail, the fallback must not.
// Followups, Deep and Log are optional.
type Deps struct {
	Bank      *bank.Bank
	Oracle    ports.ScoringPort
	Fallback  ports.ScoringPort
	Followups ports.FollowupPort
	Deep      *DeepScorer
	Log       *internal.Logger
}

// Option configures an Orchestrator at construction.
type Option func(*Orchestrator)

// WithShuffleSeed makes the queue shuffle reproducible.
func WithShuffleSeed(seed int64) Option {
	return func(o *Orchestrator) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// AnswerOutcome is everything produced by one ReceiveAnswer call, so
// callers can persist and display without re-deriving.
type AnswerOutcome struct {
	Question     string               `json:"question"`
	Answer       string               `json:"answer"`
	Evaluation   interview.Evaluation `json:"evaluation"`
	Deep         DeepScore            `json:"deep"`
	Metrics      interview.Metrics    `json:"metrics"`
	NextQuestion string               `json:"next_question"`
	Complete     bool                 `json:"complete"`
}

// Orchestrator drives one interview session through the state machine
// Idle -> InProgress -> Ended. It is not safe for concurrent use;
// callers serialize per session.
type Orchestrator struct {
	deps Deps
	rng  *rand.Rand

	state        State
	role         string
	queue        []interview.QuestionItem
	transcript   []interview.TranscriptTurn
	asked        map[string]bool
	pending      string
	pendingIdeal string
	metrics      interview.Metrics
	items        []interview.ReportItem
	terminalSent bool
}

// NewOrchestrator creates an idle orchestrator.
func NewOrchestrator(deps Deps, opts ...Option) *Orchestrator {
	if deps.Log == nil {
		deps.Log = internal.DefaultLogger
	}
	o := &Orchestrator{
		deps:  deps,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Start begins a session for role: builds the shuffled queue, asks
// the first question and moves to InProgress. A role the bank does not
// know is a hard error.
func (o *Orchestrator) Start(role string) (string, error) {
	if !o.deps.Bank.Has(role) {
		return "", apperrors.InvalidRole(role)
	}

	o.state = StateInProgress
	o.role = role
	o.queue = o.deps.Bank.Queue(role, o.rng)
	o.transcript = nil
	o.asked = make(map[string]bool)
	o.metrics = interview.Metrics{Confidence: initialConfidence}
	o.items = nil
	o.terminalSent = false

	first := o.queue[0]
	o.queue = o.queue[1:]
	o.askQuestion(first.Text, first.IdealAnswer)

	o.deps.Log.Info("interview started: role=%s questions=%d", role, len(o.queue)+1)
	return first.Text, nil
}

// ReceiveAnswer processes one candidate answer end to end: evaluate
// (degrading to the fallback scorer on oracle failure), recompute
// confidence, deep-score, then advance to a follow-up, the next bank
// question, or the terminal turn.
func (o *Orchestrator) ReceiveAnswer(ctx context.Context, answer string) (AnswerOutcome, error) {
	if o.state != StateInProgress {
		return AnswerOutcome{}, apperrors.NotInProgress()
	}

	question := o.pending
	ideal := o.pendingIdeal
	o.transcript = append(o.transcript, interview.TranscriptTurn{
		Speaker: interview.SpeakerCandidate,
		Text:    answer,
	})

	eval := o.evaluate(ctx, question, answer)
	o.metrics.Confidence = adaptive.ComputeConfidence(answer, eval.Breakdown)
	o.items = append(o.items, interview.ReportItem{
		Question:   question,
		Answer:     answer,
		Evaluation: eval,
	})

	var deep DeepScore
	if o.deps.Deep != nil {
		deep = o.deps.Deep.Score(ctx, answer, ideal)
	}

	next, complete := o.advance(ctx, question, answer)

	return AnswerOutcome{
		Question:     question,
		Answer:       answer,
		Evaluation:   eval,
		Deep:         deep,
		Metrics:      o.metrics,
		NextQuestion: next,
		Complete:     complete,
	}, nil
}

// End freezes the session and aggregates the cached evaluations into
// the final report.
func (o *Orchestrator) End() (*interview.Report, error) {
	switch o.state {
	case StateEnded:
		return nil, apperrors.AlreadyEnded()
	case StateInProgress:
	default:
		return nil, apperrors.NotInProgress()
	}

	o.state = StateEnded
	report := BuildReport(o.role, o.items)
	o.deps.Log.Info("interview ended: role=%s answers=%d total=%.1f decision=%s",
		o.role, len(report.Items), report.TotalScore, report.Decision)
	return report, nil
}

// State returns the lifecycle state.
func (o *Orchestrator) State() State {
	return o.state
}

// Role returns the session's role.
func (o *Orchestrator) Role() string {
	return o.role
}

// Metrics returns the live adaptive metrics.
func (o *Orchestrator) Metrics() interview.Metrics {
	return o.metrics
}

// Items returns a copy of the evaluated question/answer pairs so far.
func (o *Orchestrator) Items() []interview.ReportItem {
	out := make([]interview.ReportItem, len(o.items))
	copy(out, o.items)
	return out
}

// Transcript returns a copy of the conversation so far.
func (o *Orchestrator) Transcript() []interview.TranscriptTurn {
	out := make([]interview.TranscriptTurn, len(o.transcript))
	copy(out, o.transcript)
	return out
}

// SteerTopics records topics the candidate has missed so the selector
// prefers questions that touch them.
func (o *Orchestrator) SteerTopics(topics []string) {
	o.metrics.MissedTopics = topics
}

// evaluate scores with the oracle and degrades to the deterministic
// fallback on any oracle failure. The candidate-facing flow never
// fails here.
func (o *Orchestrator) evaluate(ctx context.Context, question, answer string) interview.Evaluation {
	if o.deps.Oracle != nil {
		eval, err := o.deps.Oracle.Evaluate(ctx, question, answer, o.role)
		if err == nil {
			return eval
		}
		o.deps.Log.Warn("oracle degraded to fallback scorer: %v", err)
	}

	eval, err := o.deps.Fallback.Evaluate(ctx, question, answer, o.role)
	if err != nil {
		// The fallback contract is infallible; guard anyway.
		o.deps.Log.Error("fallback scorer failed: %v", err)
		return interview.Evaluation{
			Breakdown:      map[string]float64{},
			Recommendation: interview.RecommendReject,
			Fallback:       true,
		}
	}
	return eval
}

// advance appends the next system turn: a generated follow-up when one
// is long enough, else the adaptively selected bank question, else the
// terminal message (appended exactly once).
func (o *Orchestrator) advance(ctx context.Context, question, answer string) (string, bool) {
	if o.deps.Followups != nil {
		followup, err := o.deps.Followups.Followup(ctx, question, answer, o.role)
		if err != nil {
			o.deps.Log.Warn("follow-up generation failed: %v", err)
		} else if len(followup) >= followupMinLength {
			o.askQuestion(followup, "")
			return followup, false
		}
	}

	next := adaptive.PickNext(o.queue, o.asked, o.metrics)
	if next.Text != adaptive.NoMoreQuestions {
		o.removeFromQueue(next.Text)
		o.askQuestion(next.Text, next.IdealAnswer)
		return next.Text, false
	}

	if !o.terminalSent {
		o.terminalSent = true
		o.transcript = append(o.transcript, interview.TranscriptTurn{
			Speaker: interview.SpeakerSystem,
			Text:    CompleteMessage,
		})
	}
	o.pending = ""
	o.pendingIdeal = ""
	return CompleteMessage, true
}

// askQuestion appends a system turn and registers it as asked.
func (o *Orchestrator) askQuestion(text, ideal string) {
	o.transcript = append(o.transcript, interview.TranscriptTurn{
		Speaker: interview.SpeakerSystem,
		Text:    text,
	})
	o.asked[text] = true
	o.pending = text
	o.pendingIdeal = ideal
}

func (o *Orchestrator) removeFromQueue(text string) {
	for i, item := range o.queue {
		if item.Text == text {
			o.queue = append(o.queue[:i], o.queue[i+1:]...)
			return
		}
	}
}
