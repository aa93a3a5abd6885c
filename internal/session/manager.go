// Package session keeps the registry of live interview sessions and
// ties each orchestrator to its persisted record. Concurrent sessions
// are independent; answers within one session are serialized by its
// mutex.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"hirescope/app"
	"hirescope/domain/interview"
	"hirescope/internal"
	apperrors "hirescope/internal/errors"
	"hirescope/ports"
)

// Factory builds a fresh orchestrator per session.
type Factory func() *app.Orchestrator

type liveSession struct {
	mu      sync.Mutex
	orch    *app.Orchestrator
	persona string
}

// Manager owns every live session keyed by its store-issued ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*liveSession
	store    ports.InterviewStore
	factory  Factory
	log      *internal.Logger
}

// NewManager creates a session manager.
func NewManager(store ports.InterviewStore, factory Factory, log *internal.Logger) *Manager {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &Manager{
		sessions: make(map[uuid.UUID]*liveSession),
		store:    store,
		factory:  factory,
		log:      log,
	}
}

// StartSession creates a persisted session record and starts its
// orchestrator, returning the session ID and the first question.
func (m *Manager) StartSession(ctx context.Context, role, persona string) (uuid.UUID, string, error) {
	orch := m.factory()
	first, err := orch.Start(role)
	if err != nil {
		return uuid.Nil, "", err
	}

	id, err := m.store.CreateSession(ctx, role, persona)
	if err != nil {
		return uuid.Nil, "", apperrors.DatabaseError(err)
	}

	m.mu.Lock()
	m.sessions[id] = &liveSession{orch: orch, persona: persona}
	m.mu.Unlock()

	return id, first, nil
}

// SubmitAnswer routes one answer to its session. Persistence failures
// are logged, not surfaced: the interview flow never halts on the
// store.
func (m *Manager) SubmitAnswer(ctx context.Context, id uuid.UUID, answer string) (app.AnswerOutcome, error) {
	sess, err := m.live(id)
	if err != nil {
		return app.AnswerOutcome{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	out, err := sess.orch.ReceiveAnswer(ctx, answer)
	if err != nil {
		return app.AnswerOutcome{}, err
	}

	metadata := map[string]interface{}{
		"eval":     out.Evaluation,
		"deep":     out.Deep,
		"fallback": out.Evaluation.Fallback,
	}
	if err := m.store.AppendAnswer(ctx, id, out.Question, out.Answer, out.Evaluation.Score, metadata); err != nil {
		m.log.Warn("answer not persisted for session %s: %v", id, err)
	}
	return out, nil
}

// EndSession ends the session and records its total score.
func (m *Manager) EndSession(ctx context.Context, id uuid.UUID) (*interview.Report, error) {
	sess, err := m.live(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	report, err := sess.orch.End()
	if err != nil {
		return nil, err
	}
	if err := m.store.FinishSession(ctx, id, report.TotalScore); err != nil {
		m.log.Warn("session end not persisted for %s: %v", id, err)
	}
	return report, nil
}

// Report rebuilds the report of an ended session without mutating
// state.
func (m *Manager) Report(id uuid.UUID) (*interview.Report, error) {
	sess, err := m.live(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.orch.State() != app.StateEnded {
		return nil, apperrors.NotInProgress()
	}
	return app.BuildReport(sess.orch.Role(), sess.orch.Items()), nil
}

// Transcript returns the live conversation of a session.
func (m *Manager) Transcript(id uuid.UUID) ([]interview.TranscriptTurn, error) {
	sess, err := m.live(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.orch.Transcript(), nil
}

// List returns every persisted session.
func (m *Manager) List(ctx context.Context) ([]ports.SessionRecord, error) {
	return m.store.ListSessions(ctx)
}

// Get returns one persisted session with its answers.
func (m *Manager) Get(ctx context.Context, id uuid.UUID) (*ports.SessionRecord, []ports.AnswerRecord, error) {
	rec, err := m.store.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	answers, err := m.store.GetAnswers(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return rec, answers, nil
}

func (m *Manager) live(id uuid.UUID) (*liveSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, apperrors.NotFound("session")
	}
	return sess, nil
}
