package chatlog

import (
	"context"
	"time"
)

// ChatLog is one persisted tutor exchange.
type ChatLog struct {
	ID          uint
	UserID      uint
	Subject     string
	GradeLevel  string
	UserMessage string
	AIResponse  string
	AIProvider  string
	CreatedAt   time.Time
}

type ChatLogFilter struct {
	UserID  *uint
	Subject *string
}

type ChatLogRepository interface {
	Create(ctx context.Context, log *ChatLog) error
	FindByFilter(ctx context.Context, filter ChatLogFilter) ([]*ChatLog, error)
}
