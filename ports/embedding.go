package ports

import "context"

// EmbeddingPort turns text into a dense vector for semantic
// comparison against ideal answers. Failures never abort an
// evaluation; callers keep their baseline scores.
type EmbeddingPort interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}
