package reflectionrepo

import (
	"context"

	domain "edukasi.ai/edu-api-gateway/app/domain/reflection"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/dbschema"

	"gorm.io/gorm"
)

type ReflectionGormRepository struct {
	db *gorm.DB
}

func NewReflectionGormRepository(db *gorm.DB) domain.ReflectionRepository {
	return &ReflectionGormRepository{
		db: db,
	}
}

func (r *ReflectionGormRepository) Create(ctx context.Context, reflection *domain.Reflection) error {
	model := dbschema.NewSchemaReflection(reflection)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	reflection.ID = model.ID
	return nil
}

func (r *ReflectionGormRepository) FindByUserID(ctx context.Context, userID uint) ([]*domain.Reflection, error) {
	var models []dbschema.Reflection
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	reflections := make([]*domain.Reflection, len(models))
	for i := range models {
		reflections[i] = models[i].EtoD()
	}
	return reflections, nil
}
