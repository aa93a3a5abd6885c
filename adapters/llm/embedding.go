package llm

import (
	"context"

	apperrors "hirescope/internal/errors"
)

// Embedder implements ports.EmbeddingPort over the embeddings API.
type Embedder struct {
	config Config
	client *OpenAIClient
}

// NewEmbedder creates an embedding adapter
func NewEmbedder(config Config) *Embedder {
	return &Embedder{config: config, client: NewOpenAIClient(config)}
}

// Embed returns the vector for text. Missing credential yields
// EMBEDDING_UNAVAILABLE, transport failures EMBEDDING_ERROR; the deep
// scorer treats both as "keep the baseline".
func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if e.config.APIKey == "" {
		return nil, apperrors.EmbeddingUnavailable("embedding provider has no API key")
	}

	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	vec, err := e.client.Embed(ctx, text)
	if err != nil {
		return nil, apperrors.EmbeddingError(err)
	}
	return vec, nil
}
