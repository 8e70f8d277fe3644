package dbschema

import (
	"edukasi.ai/edu-api-gateway/app/domain/chatlog"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(ChatLog{})
}

type ChatLog struct {
	BaseModel
	UserID      uint `gorm:"index"`
	Subject     string
	GradeLevel  string
	UserMessage string `gorm:"type:text"`
	AIResponse  string `gorm:"type:text"`
	AIProvider  string
}

func NewSchemaChatLog(l *chatlog.ChatLog) *ChatLog {
	return &ChatLog{
		BaseModel: BaseModel{
			ID: l.ID,
		},
		UserID:      l.UserID,
		Subject:     l.Subject,
		GradeLevel:  l.GradeLevel,
		UserMessage: l.UserMessage,
		AIResponse:  l.AIResponse,
		AIProvider:  l.AIProvider,
	}
}

func (l *ChatLog) EtoD() *chatlog.ChatLog {
	return &chatlog.ChatLog{
		ID:          l.ID,
		UserID:      l.UserID,
		Subject:     l.Subject,
		GradeLevel:  l.GradeLevel,
		UserMessage: l.UserMessage,
		AIResponse:  l.AIResponse,
		AIProvider:  l.AIProvider,
		CreatedAt:   l.CreatedAt,
	}
}
