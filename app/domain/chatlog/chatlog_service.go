package chatlog

import "context"

type ChatLogService struct {
	repo ChatLogRepository
}

func NewService(repo ChatLogRepository) *ChatLogService {
	return &ChatLogService{repo: repo}
}

func (s *ChatLogService) Record(ctx context.Context, log *ChatLog) error {
	return s.repo.Create(ctx, log)
}

// History lists a user's exchanges in chronological order, optionally limited
// to one subject.
func (s *ChatLogService) History(ctx context.Context, userID uint, subject *string) ([]*ChatLog, error) {
	return s.repo.FindByFilter(ctx, ChatLogFilter{
		UserID:  &userID,
		Subject: subject,
	})
}
