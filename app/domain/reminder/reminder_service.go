package reminder

import (
	"context"
	"time"

	"github.com/mileusna/crontab"

	"edukasi.ai/edu-api-gateway/app/domain/otp"
	"edukasi.ai/edu-api-gateway/app/domain/ratelimit"
	"edukasi.ai/edu-api-gateway/app/utils/logger"
	"edukasi.ai/edu-api-gateway/app/utils/ptr"
)

// ReminderMailer delivers the daily study-reminder mail.
type ReminderMailer interface {
	SendReminderEmail(address string, reminderTime string) error
}

// ReminderService owns the OTP-gated create and delete flows and the daily
// delivery job. Creating or deleting a reminder always proves control of the
// email address first.
type ReminderService struct {
	repo     ReminderRepository
	verifier *otp.Verifier
	limiter  *ratelimit.Limiter
	mailer   ReminderMailer
	nowFunc  func() time.Time
}

func NewService(repo ReminderRepository, verifier *otp.Verifier, limiter *ratelimit.Limiter, mailer ReminderMailer) *ReminderService {
	return &ReminderService{
		repo:     repo,
		verifier: verifier,
		limiter:  limiter,
		mailer:   mailer,
		nowFunc:  time.Now,
	}
}

func (s *ReminderService) findByUserAndEmail(ctx context.Context, userID uint, email string) (*Reminder, error) {
	reminders, err := s.repo.FindByFilter(ctx, ReminderFilter{
		UserID: &userID,
		Email:  &email,
	})
	if err != nil {
		return nil, err
	}
	if len(reminders) == 0 {
		return nil, nil
	}
	return reminders[0], nil
}

// issueOTP rate-gates OTP issuance per email and records the stamp only after
// the mail went out.
func (s *ReminderService) issueOTP(purpose, email string) error {
	if !s.limiter.Allow(email, ratelimit.ActionOTP) {
		return &ratelimit.CooldownError{
			Action:     ratelimit.ActionOTP,
			RetryAfter: s.limiter.RetryAfter(email, ratelimit.ActionOTP),
		}
	}
	if err := s.verifier.Issue(purpose, email); err != nil {
		return err
	}
	s.limiter.Record(email, ratelimit.ActionOTP)
	return nil
}

// RequestCreateOTP mails a verification code for creating a reminder.
func (s *ReminderService) RequestCreateOTP(ctx context.Context, email string) error {
	return s.issueOTP(otp.PurposeReminderCreate, email)
}

// ConfirmCreate verifies the code and persists the reminder.
func (s *ReminderService) ConfirmCreate(ctx context.Context, userID uint, email, code, reminderTime string) (*Reminder, error) {
	if _, err := time.Parse("15:04", reminderTime); err != nil {
		return nil, ErrInvalidTime
	}
	if err := s.verifier.Verify(otp.PurposeReminderCreate, email, code); err != nil {
		return nil, err
	}
	r := &Reminder{
		UserID:       userID,
		Email:        email,
		ReminderTime: reminderTime,
		IsActive:     true,
		CreatedAt:    s.nowFunc(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// RequestDeleteOTP mails a verification code for deleting the reminder
// registered for (user, email). Fails with ErrNotFound when there is none.
func (s *ReminderService) RequestDeleteOTP(ctx context.Context, userID uint, email string) error {
	existing, err := s.findByUserAndEmail(ctx, userID, email)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.issueOTP(otp.PurposeReminderDelete, email)
}

// ConfirmDelete verifies the code and removes the reminder.
func (s *ReminderService) ConfirmDelete(ctx context.Context, userID uint, email, code string) error {
	if err := s.verifier.Verify(otp.PurposeReminderDelete, email, code); err != nil {
		return err
	}
	existing, err := s.findByUserAndEmail(ctx, userID, email)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, existing.ID)
}

// RemainingAttempts exposes the verifier's attempt budget for UI messaging.
func (s *ReminderService) RemainingAttempts(purpose, email string) int {
	return s.verifier.RemainingAttempts(purpose, email)
}

// Start registers the delivery job: once a minute, mail every active reminder
// whose HH:MM matches the current time.
func (s *ReminderService) Start(ctx context.Context, ctab *crontab.Crontab) {
	ctab.AddJob("* * * * *", func() {
		s.deliverDue(ctx)
	})
}

func (s *ReminderService) deliverDue(ctx context.Context) {
	hhmm := s.nowFunc().Format("15:04")
	due, err := s.repo.FindByFilter(ctx, ReminderFilter{
		IsActive:     ptr.ToBool(true),
		ReminderTime: &hhmm,
	})
	if err != nil {
		logger.GetLogger().Warnf("reminder service: failed to list due reminders: %v", err)
		return
	}
	for _, r := range due {
		if err := s.mailer.SendReminderEmail(r.Email, r.ReminderTime); err != nil {
			logger.GetLogger().Warnf("reminder service: failed to mail %s: %v", r.Email, err)
		}
	}
}
