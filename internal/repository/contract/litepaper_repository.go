package contract

import (
	"context"

	"ai-litepaper-be/internal/entity"

	"github.com/google/uuid"
)

type LitepaperRepository interface {
	Create(ctx context.Context, litepaper *entity.Litepaper) error

	// FindById returns (nil, nil) when no record exists; callers decide
	// whether absence is an error.
	FindById(ctx context.Context, id uuid.UUID) (*entity.Litepaper, error)

	// FindRecent returns up to limit records, newest first.
	FindRecent(ctx context.Context, limit int) ([]*entity.Litepaper, error)
}
