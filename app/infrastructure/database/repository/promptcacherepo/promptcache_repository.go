package promptcacherepo

import (
	"context"
	"errors"
	"time"

	domain "edukasi.ai/edu-api-gateway/app/domain/promptcache"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/dbschema"

	"gorm.io/gorm"
)

type PromptCacheGormRepository struct {
	db *gorm.DB
}

func NewPromptCacheGormRepository(db *gorm.DB) domain.EntryRepository {
	return &PromptCacheGormRepository{
		db: db,
	}
}

func (r *PromptCacheGormRepository) Insert(ctx context.Context, entry *domain.Entry) error {
	model := dbschema.NewSchemaPromptCacheEntry(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	entry.ID = model.ID
	return nil
}

func (r *PromptCacheGormRepository) FindLive(ctx context.Context, fingerprint string, now time.Time) (*domain.Entry, error) {
	var model dbschema.PromptCacheEntry
	err := r.db.WithContext(ctx).
		Where("fingerprint = ? AND expires_at > ?", fingerprint, now).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return model.EtoD(), nil
}
