// Package testkit provides in-memory fakes for the engine's ports so
// package tests run without Postgres or an LLM endpoint.
package testkit

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hirescope/domain/bank"
	"hirescope/domain/interview"
	apperrors "hirescope/internal/errors"
	"hirescope/ports"
)

// InMemoryStore implements ports.InterviewStore over maps.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*ports.SessionRecord
	answers  map[uuid.UUID][]ports.AnswerRecord
	nextID   int64
}

// NewInMemoryStore creates an empty store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[uuid.UUID]*ports.SessionRecord),
		answers:  make(map[uuid.UUID][]ports.AnswerRecord),
	}
}

func (s *InMemoryStore) CreateSession(ctx context.Context, role, persona string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.sessions[id] = &ports.SessionRecord{
		ID:        id,
		Role:      role,
		Persona:   persona,
		StartedAt: time.Now().UTC(),
	}
	return id, nil
}

func (s *InMemoryStore) AppendAnswer(ctx context.Context, sessionID uuid.UUID, question, answer string, score float64, metadata map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return apperrors.NotFound("session")
	}
	s.nextID++
	s.answers[sessionID] = append(s.answers[sessionID], ports.AnswerRecord{
		ID:        s.nextID,
		SessionID: sessionID,
		Question:  question,
		Answer:    answer,
		Score:     score,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

func (s *InMemoryStore) FinishSession(ctx context.Context, sessionID uuid.UUID, totalScore float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.sessions[sessionID]
	if !ok {
		return apperrors.NotFound("session")
	}
	now := time.Now().UTC()
	rec.EndedAt = &now
	rec.TotalScore = totalScore
	return nil
}

func (s *InMemoryStore) ListSessions(ctx context.Context) ([]ports.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ports.SessionRecord, 0, len(s.sessions))
	for _, rec := range s.sessions {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out, nil
}

func (s *InMemoryStore) GetSession(ctx context.Context, sessionID uuid.UUID) (*ports.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperrors.NotFound("session")
	}
	copied := *rec
	return &copied, nil
}

func (s *InMemoryStore) GetAnswers(ctx context.Context, sessionID uuid.UUID) ([]ports.AnswerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ports.AnswerRecord, len(s.answers[sessionID]))
	copy(out, s.answers[sessionID])
	return out, nil
}

// ScriptedScorer implements ports.ScoringPort by replaying canned
// evaluations in order; the last one repeats once exhausted.
type ScriptedScorer struct {
	Evaluations []interview.Evaluation
	Calls       int
}

func (s *ScriptedScorer) Evaluate(ctx context.Context, question, answer, role string) (interview.Evaluation, error) {
	idx := s.Calls
	s.Calls++
	if idx >= len(s.Evaluations) {
		idx = len(s.Evaluations) - 1
	}
	if idx < 0 {
		return interview.Evaluation{}, apperrors.OracleUnavailable("no scripted evaluations")
	}
	return s.Evaluations[idx], nil
}

// FailingScorer implements ports.ScoringPort by always failing,
// forcing the orchestrator's degrade path.
type FailingScorer struct {
	Err error
}

func (s *FailingScorer) Evaluate(ctx context.Context, question, answer, role string) (interview.Evaluation, error) {
	if s.Err != nil {
		return interview.Evaluation{}, s.Err
	}
	return interview.Evaluation{}, apperrors.OracleUnavailable("scripted outage")
}

// ScriptedFollowups implements ports.FollowupPort with a fixed queue
// of follow-up texts; once drained it returns "".
type ScriptedFollowups struct {
	Queue []string
	Err   error
}

func (f *ScriptedFollowups) Followup(ctx context.Context, question, answer, role string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Queue) == 0 {
		return "", nil
	}
	next := f.Queue[0]
	f.Queue = f.Queue[1:]
	return next, nil
}

// StaticEmbedder implements ports.EmbeddingPort with a fixed
// text-to-vector table; unknown text yields Fallback or an error.
type StaticEmbedder struct {
	Vectors  map[string][]float64
	Fallback []float64
	Err      error
}

func (e *StaticEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if e.Err != nil {
		return nil, e.Err
	}
	if vec, ok := e.Vectors[text]; ok {
		return vec, nil
	}
	return e.Fallback, nil
}

// FixtureBank is a two-role bank small enough to reason about in
// tests.
func FixtureBank() *bank.Bank {
	return bank.New(map[string]bank.RoleQuestions{
		"Software Engineer": {
			Technical: []interview.QuestionItem{
				{Text: "Explain caching strategies.", Difficulty: interview.DifficultyBeginner, IdealAnswer: "caching systems lru ttl"},
				{Text: "How do you scale a service?", Difficulty: interview.DifficultyIntermediate, IdealAnswer: "networking load balancing sharding"},
				{Text: "Design a rate limiter.", Difficulty: interview.DifficultyExpert, IdealAnswer: "token bucket sliding window"},
			},
			Behavioral: []interview.QuestionItem{
				{Text: "Tell me about a conflict.", Difficulty: interview.DifficultyIntermediate},
			},
		},
		"Product Manager": {
			Situational: []interview.QuestionItem{
				{Text: "A launch slips a week. What now?", Difficulty: interview.DifficultyBeginner},
			},
		},
	})
}

// Eval builds a minimal evaluation with the full four-dimension
// breakdown summing to score/4 each.
func Eval(score float64, rec interview.Recommendation) interview.Evaluation {
	per := score / 4
	return interview.Evaluation{
		Score: score,
		Breakdown: map[string]float64{
			interview.DimRelevance:      per,
			interview.DimTechnicalDepth: per,
			interview.DimClarity:        per,
			interview.DimStructure:      per,
		},
		Recommendation: rec,
	}
}
