// Package postgres implements the interview store on PostgreSQL via
// sqlx.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	apperrors "hirescope/internal/errors"
	"hirescope/ports"
)

// interviewRepository implements the InterviewStore interface
type interviewRepository struct {
	db *sqlx.DB
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *sqlx.DB) ports.InterviewStore {
	return &interviewRepository{db: db}
}

// Init creates the schema if it does not exist yet.
func Init(ctx context.Context, db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS interviews (
		id UUID PRIMARY KEY,
		role TEXT NOT NULL,
		persona TEXT NOT NULL DEFAULT '',
		started_at TIMESTAMPTZ NOT NULL,
		ended_at TIMESTAMPTZ,
		total_score DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS answers (
		id BIGSERIAL PRIMARY KEY,
		session_id UUID NOT NULL REFERENCES interviews(id),
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		score DOUBLE PRECISION NOT NULL,
		metadata JSONB,
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_answers_session ON answers(session_id);`

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return apperrors.DatabaseError(fmt.Errorf("failed to create schema: %w", err))
	}
	return nil
}

// CreateSession inserts a new session row and returns its ID.
func (r *interviewRepository) CreateSession(ctx context.Context, role, persona string) (uuid.UUID, error) {
	id := uuid.New()
	query := `INSERT INTO interviews (id, role, persona, started_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, id, role, persona, time.Now().UTC())
	if err != nil {
		return uuid.Nil, apperrors.DatabaseError(fmt.Errorf("failed to create session: %w", err))
	}
	return id, nil
}

// AppendAnswer inserts one question/answer pair with its evaluation
// metadata.
func (r *interviewRepository) AppendAnswer(ctx context.Context, sessionID uuid.UUID, question, answer string, score float64, metadata map[string]interface{}) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return apperrors.DatabaseError(fmt.Errorf("failed to marshal metadata: %w", err))
	}

	query := `INSERT INTO answers (session_id, question, answer, score, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query, sessionID, question, answer, score, metadataJSON, time.Now().UTC())
	if err != nil {
		return apperrors.DatabaseError(fmt.Errorf("failed to append answer: %w", err))
	}
	return nil
}

// FinishSession stamps the end time and total score.
func (r *interviewRepository) FinishSession(ctx context.Context, sessionID uuid.UUID, totalScore float64) error {
	query := `UPDATE interviews SET ended_at = $1, total_score = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, time.Now().UTC(), totalScore, sessionID)
	if err != nil {
		return apperrors.DatabaseError(fmt.Errorf("failed to finish session: %w", err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.NotFound("session")
	}
	return nil
}

// ListSessions returns every session, oldest first.
func (r *interviewRepository) ListSessions(ctx context.Context) ([]ports.SessionRecord, error) {
	query := `SELECT id, role, persona, started_at, ended_at, total_score
		FROM interviews ORDER BY started_at ASC`

	var records []ports.SessionRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, apperrors.DatabaseError(fmt.Errorf("failed to list sessions: %w", err))
	}
	return records, nil
}

// GetSession returns one session by ID.
func (r *interviewRepository) GetSession(ctx context.Context, sessionID uuid.UUID) (*ports.SessionRecord, error) {
	query := `SELECT id, role, persona, started_at, ended_at, total_score
		FROM interviews WHERE id = $1`

	var record ports.SessionRecord
	if err := r.db.GetContext(ctx, &record, query, sessionID); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("session")
		}
		return nil, apperrors.DatabaseError(fmt.Errorf("failed to get session: %w", err))
	}
	return &record, nil
}

// GetAnswers returns a session's answers in insertion order.
func (r *interviewRepository) GetAnswers(ctx context.Context, sessionID uuid.UUID) ([]ports.AnswerRecord, error) {
	query := `SELECT id, session_id, question, answer, score, metadata, created_at
		FROM answers WHERE session_id = $1 ORDER BY id ASC`

	rows, err := r.db.QueryxContext(ctx, query, sessionID)
	if err != nil {
		return nil, apperrors.DatabaseError(fmt.Errorf("failed to get answers: %w", err))
	}
	defer rows.Close()

	var records []ports.AnswerRecord
	for rows.Next() {
		var rec ports.AnswerRecord
		var metadataJSON []byte
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.Question, &rec.Answer, &rec.Score, &metadataJSON, &rec.CreatedAt); err != nil {
			return nil, apperrors.DatabaseError(fmt.Errorf("failed to scan answer: %w", err))
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &rec.Metadata); err != nil {
				return nil, apperrors.DatabaseError(fmt.Errorf("failed to unmarshal metadata: %w", err))
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.DatabaseError(fmt.Errorf("failed to iterate answers: %w", err))
	}
	return records, nil
}
