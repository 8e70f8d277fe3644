package dbschema

import (
	"edukasi.ai/edu-api-gateway/app/domain/reminder"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Reminder{})
}

type Reminder struct {
	BaseModel
	UserID       uint   `gorm:"index"`
	Email        string `gorm:"index"`
	ReminderTime string
	IsActive     bool
}

func NewSchemaReminder(r *reminder.Reminder) *Reminder {
	return &Reminder{
		BaseModel: BaseModel{
			ID: r.ID,
		},
		UserID:       r.UserID,
		Email:        r.Email,
		ReminderTime: r.ReminderTime,
		IsActive:     r.IsActive,
	}
}

func (r *Reminder) EtoD() *reminder.Reminder {
	return &reminder.Reminder{
		ID:           r.ID,
		UserID:       r.UserID,
		Email:        r.Email,
		ReminderTime: r.ReminderTime,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
	}
}
