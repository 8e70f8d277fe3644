package reflection

import (
	"context"
	"time"
)

// Reflection is a student's graded self-reflection.
type Reflection struct {
	ID         uint
	UserID     uint
	Subject    string
	Text       string
	Correction string
	Feedback   string
	Score      float64
	CreatedAt  time.Time
}

type ReflectionRepository interface {
	Create(ctx context.Context, r *Reflection) error
	FindByUserID(ctx context.Context, userID uint) ([]*Reflection, error)
}

type ReflectionService struct {
	repo ReflectionRepository
}

func NewService(repo ReflectionRepository) *ReflectionService {
	return &ReflectionService{repo: repo}
}

func (s *ReflectionService) Save(ctx context.Context, r *Reflection) error {
	return s.repo.Create(ctx, r)
}

func (s *ReflectionService) ListByUser(ctx context.Context, userID uint) ([]*Reflection, error) {
	return s.repo.FindByUserID(ctx, userID)
}
