package user

import "context"

const (
	GradeLevelSD  = "SD"
	GradeLevelSMP = "SMP"
	GradeLevelSMA = "SMA"
)

type User struct {
	ID         uint
	PublicID   string
	Name       string
	Email      string
	GradeLevel string
	Enabled    bool
}

func ValidGradeLevel(level string) bool {
	switch level {
	case GradeLevelSD, GradeLevelSMP, GradeLevelSMA:
		return true
	}
	return false
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateGradeLevel(ctx context.Context, id uint, gradeLevel string) error
}
