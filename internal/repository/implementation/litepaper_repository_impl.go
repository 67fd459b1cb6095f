package implementation

import (
	"context"
	"errors"

	"ai-litepaper-be/internal/entity"
	"ai-litepaper-be/internal/mapper"
	"ai-litepaper-be/internal/model"
	"ai-litepaper-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LitepaperRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LitepaperMapper
}

func NewLitepaperRepository(db *gorm.DB) contract.LitepaperRepository {
	return &LitepaperRepositoryImpl{
		db:     db,
		mapper: mapper.NewLitepaperMapper(),
	}
}

func (r *LitepaperRepositoryImpl) Create(ctx context.Context, litepaper *entity.Litepaper) error {
	m, err := r.mapper.ToModel(litepaper)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	saved, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*litepaper = *saved
	return nil
}

func (r *LitepaperRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Litepaper, error) {
	var m model.Litepaper
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *LitepaperRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.Litepaper, error) {
	var models []*model.Litepaper
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	results := make([]*entity.Litepaper, 0, len(models))
	for _, m := range models {
		e, err := r.mapper.ToEntity(m)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, nil
}
