package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionRecord is a persisted interview session summary.
type SessionRecord struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Role       string     `db:"role" json:"role"`
	Persona    string     `db:"persona" json:"persona"`
	StartedAt  time.Time  `db:"started_at" json:"started_at"`
	EndedAt    *time.Time `db:"ended_at" json:"ended_at,omitempty"`
	TotalScore float64    `db:"total_score" json:"total_score"`
}

// AnswerRecord is one persisted question/answer pair with its score
// and evaluation metadata.
type AnswerRecord struct {
	ID        int64                  `db:"id" json:"id"`
	SessionID uuid.UUID              `db:"session_id" json:"session_id"`
	Question  string                 `db:"question" json:"question"`
	Answer    string                 `db:"answer" json:"answer"`
	Score     float64                `db:"score" json:"score"`
	Metadata  map[string]interface{} `db:"-" json:"metadata,omitempty"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
}

// InterviewStore persists sessions and their answers. Writes are
// append-only per session, which keeps concurrent sessions safe under
// per-session serialization.
type InterviewStore interface {
	CreateSession(ctx context.Context, role, persona string) (uuid.UUID, error)
	AppendAnswer(ctx context.Context, sessionID uuid.UUID, question, answer string, score float64, metadata map[string]interface{}) error
	FinishSession(ctx context.Context, sessionID uuid.UUID, totalScore float64) error
	ListSessions(ctx context.Context) ([]SessionRecord, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*SessionRecord, error)
	GetAnswers(ctx context.Context, sessionID uuid.UUID) ([]AnswerRecord, error)
}
