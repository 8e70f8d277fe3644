package reminderrepo

import (
	"context"

	domain "edukasi.ai/edu-api-gateway/app/domain/reminder"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/dbschema"

	"gorm.io/gorm"
)

type ReminderGormRepository struct {
	db *gorm.DB
}

func NewReminderGormRepository(db *gorm.DB) domain.ReminderRepository {
	return &ReminderGormRepository{
		db: db,
	}
}

func (r *ReminderGormRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	model := dbschema.NewSchemaReminder(reminder)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	reminder.ID = model.ID
	return nil
}

func (r *ReminderGormRepository) FindByFilter(ctx context.Context, filter domain.ReminderFilter) ([]*domain.Reminder, error) {
	query := r.db.WithContext(ctx).Model(&dbschema.Reminder{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Email != nil {
		query = query.Where("email = ?", *filter.Email)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.ReminderTime != nil {
		query = query.Where("reminder_time = ?", *filter.ReminderTime)
	}

	var models []dbschema.Reminder
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	reminders := make([]*domain.Reminder, len(models))
	for i := range models {
		reminders[i] = models[i].EtoD()
	}
	return reminders, nil
}

func (r *ReminderGormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&dbschema.Reminder{}, id).Error
}
