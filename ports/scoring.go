package ports

import (
	"context"

	"hirescope/domain/interview"
)

// ScoringPort is the contract of the external judge that scores a
// free-text answer against a question for a role. Implementations may
// be non-deterministic and may fail with ORACLE_UNAVAILABLE (missing
// credential) or ORACLE_ERROR (transport or malformed response); the
// orchestrator recovers from both with a deterministic local scorer.
type ScoringPort interface {
	Evaluate(ctx context.Context, question, answer, role string) (interview.Evaluation, error)
}
