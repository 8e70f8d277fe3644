package reminder

import (
	"context"
	"errors"
	"time"
)

// Reminder is a daily study-reminder subscription for one email address.
type Reminder struct {
	ID           uint
	UserID       uint
	Email        string
	ReminderTime string // "HH:MM", server local time
	IsActive     bool
	CreatedAt    time.Time
}

var (
	// ErrNotFound means no reminder exists for the (user, email) pair.
	ErrNotFound = errors.New("reminder: not found")
	// ErrInvalidTime means the reminder time is not a valid "HH:MM".
	ErrInvalidTime = errors.New("reminder: invalid time, expected HH:MM")
)

type ReminderFilter struct {
	UserID       *uint
	Email        *string
	IsActive     *bool
	ReminderTime *string
}

type ReminderRepository interface {
	Create(ctx context.Context, r *Reminder) error
	FindByFilter(ctx context.Context, filter ReminderFilter) ([]*Reminder, error)
	Delete(ctx context.Context, id uint) error
}
