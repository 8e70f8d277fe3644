package chatlogrepo

import (
	"context"

	domain "edukasi.ai/edu-api-gateway/app/domain/chatlog"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/dbschema"

	"gorm.io/gorm"
)

type ChatLogGormRepository struct {
	db *gorm.DB
}

func NewChatLogGormRepository(db *gorm.DB) domain.ChatLogRepository {
	return &ChatLogGormRepository{
		db: db,
	}
}

func (r *ChatLogGormRepository) Create(ctx context.Context, log *domain.ChatLog) error {
	model := dbschema.NewSchemaChatLog(log)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	log.ID = model.ID
	return nil
}

func (r *ChatLogGormRepository) FindByFilter(ctx context.Context, filter domain.ChatLogFilter) ([]*domain.ChatLog, error) {
	query := r.db.WithContext(ctx).Model(&dbschema.ChatLog{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Subject != nil {
		query = query.Where("subject = ?", *filter.Subject)
	}

	var models []dbschema.ChatLog
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	logs := make([]*domain.ChatLog, len(models))
	for i := range models {
		logs[i] = models[i].EtoD()
	}
	return logs, nil
}
