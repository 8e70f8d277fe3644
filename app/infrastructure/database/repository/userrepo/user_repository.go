package userrepo

import (
	"context"
	"errors"
	"fmt"

	domain "edukasi.ai/edu-api-gateway/app/domain/user"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/dbschema"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) domain.UserRepository {
	return &UserGormRepository{
		db: db,
	}
}

func (r *UserGormRepository) Create(ctx context.Context, u *domain.User) error {
	model := dbschema.NewSchemaUser(u)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	u.ID = model.ID
	return nil
}

func (r *UserGormRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var model dbschema.User
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, err
	}

	return model.EtoD(), nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var models []dbschema.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).Find(&models).Error; err != nil {
		return nil, err
	}

	if len(models) == 0 {
		return nil, nil
	}

	if len(models) != 1 {
		return nil, fmt.Errorf("duplicated user email")
	}
	return models[0].EtoD(), nil
}

func (r *UserGormRepository) UpdateGradeLevel(ctx context.Context, id uint, gradeLevel string) error {
	result := r.db.WithContext(ctx).
		Model(&dbschema.User{}).
		Where("id = ?", id).
		Update("grade_level", gradeLevel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}
