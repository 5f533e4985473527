package contract

import (
	"context"

	"mock-interview-be/internal/entity"
)

type DocumentEmbeddingRepository interface {
	// Upsert inserts or overwrites the entry keyed by (UserId, Kind).
	Upsert(ctx context.Context, embedding *entity.DocumentEmbedding) error
	FindOne(ctx context.Context, userId, kind string) (*entity.DocumentEmbedding, error)
	FindAllByUser(ctx context.Context, userId string) ([]*entity.DocumentEmbedding, error)
	Count(ctx context.Context, userId string) (int64, error)
	// SearchSimilar orders a user's documents by cosine distance to the
	// query vector. Unused by the interview flow today; the retrieval hook
	// for context assembly when question generation grows a RAG step.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, userId string) ([]*entity.DocumentEmbedding, error)
}
