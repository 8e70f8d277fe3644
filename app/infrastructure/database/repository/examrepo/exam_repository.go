package examrepo

import (
	"context"
	"errors"

	domain "edukasi.ai/edu-api-gateway/app/domain/exam"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/dbschema"

	"gorm.io/gorm"
)

type ExamGormRepository struct {
	db *gorm.DB
}

func NewExamGormRepository(db *gorm.DB) domain.ExamRepository {
	return &ExamGormRepository{
		db: db,
	}
}

func (r *ExamGormRepository) Create(ctx context.Context, e *domain.Exam) error {
	model := dbschema.NewSchemaExam(e)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	e.ID = model.ID
	return nil
}

func (r *ExamGormRepository) FindByID(ctx context.Context, id uint) (*domain.Exam, error) {
	var model dbschema.Exam
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *ExamGormRepository) RecordSubmission(ctx context.Context, id uint, answers string, score float64) error {
	return r.db.WithContext(ctx).
		Model(&dbschema.Exam{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"answers": answers,
			"score":   score,
		}).Error
}

func (r *ExamGormRepository) FindByUserID(ctx context.Context, userID uint) ([]*domain.Exam, error) {
	var models []dbschema.Exam
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	exams := make([]*domain.Exam, len(models))
	for i := range models {
		exams[i] = models[i].EtoD()
	}
	return exams, nil
}
