package ports

import "context"

// Exporter produces a tabular workbook of every stored session with
// columns {session_id, role, persona, question, answer, score}.
// Sessions without answers still emit one row carrying their stored
// total score.
type Exporter interface {
	ExportAll(ctx context.Context) ([]byte, error)
}
