package memory

import (
	"context"
	"sort"

	"ai-litepaper-be/internal/entity"
	"ai-litepaper-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// LitepaperRepository keeps records in process memory. Used for development
// and tests; records survive as long as the process does.
type LitepaperRepository struct {
	cache *cache.Cache
}

func NewLitepaperRepository() contract.LitepaperRepository {
	return &LitepaperRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *LitepaperRepository) Create(ctx context.Context, litepaper *entity.Litepaper) error {
	cp := *litepaper
	r.cache.Set(litepaper.Id.String(), &cp, cache.NoExpiration)
	return nil
}

func (r *LitepaperRepository) FindById(ctx context.Context, id uuid.UUID) (*entity.Litepaper, error) {
	if x, found := r.cache.Get(id.String()); found {
		cp := *x.(*entity.Litepaper)
		return &cp, nil
	}
	return nil, nil
}

func (r *LitepaperRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Litepaper, error) {
	items := r.cache.Items()

	all := make([]*entity.Litepaper, 0, len(items))
	for _, item := range items {
		cp := *item.Object.(*entity.Litepaper)
		all = append(all, &cp)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
