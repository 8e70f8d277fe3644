package otp

import (
	"errors"
	"sync"
	"time"

	"edukasi.ai/edu-api-gateway/app/utils/idgen"
)

const (
	PurposeReminderCreate = "reminder_create"
	PurposeReminderDelete = "reminder_delete"

	codeDigits  = 6
	maxAttempts = 3
)

var (
	// ErrNotFound means no challenge exists for the purpose+email; the caller
	// must issue one first.
	ErrNotFound = errors.New("otp: no active challenge")
	// ErrExpired means the challenge outlived the expiry window. The challenge
	// is dropped; the caller must re-issue.
	ErrExpired = errors.New("otp: code expired")
	// ErrTooManyAttempts means the challenge is blocked after three failed
	// verifications. Only a re-issue clears it.
	ErrTooManyAttempts = errors.New("otp: too many attempts")
	// ErrMismatch means the candidate code did not match.
	ErrMismatch = errors.New("otp: code mismatch")
)

// Mailer delivers the one-time code to the address being verified.
type Mailer interface {
	SendOTPEmail(address string, code string) error
}

type challenge struct {
	code     string
	issuedAt time.Time
	attempts int
}

// Verifier runs one OTP state machine per (purpose, email) key. Challenges for
// different purposes never share key space, so a create-reminder code can not
// confirm a delete. State is session-scoped and held in memory only; the code
// itself is never persisted.
type Verifier struct {
	mu         sync.Mutex
	mailer     Mailer
	expiry     time.Duration
	challenges map[string]*challenge
	nowFunc    func() time.Time
}

func NewVerifier(mailer Mailer, expiry time.Duration) *Verifier {
	return &Verifier{
		mailer:     mailer,
		expiry:     expiry,
		challenges: make(map[string]*challenge),
		nowFunc:    time.Now,
	}
}

func key(purpose, email string) string {
	return purpose + ":" + email
}

// Issue generates a fresh six-digit code, mails it, and records the challenge
// with attempts reset to zero. A mail failure surfaces unchanged and leaves no
// challenge behind.
func (v *Verifier) Issue(purpose, email string) error {
	code, err := idgen.GenerateNumericCode(codeDigits)
	if err != nil {
		return err
	}
	if err := v.mailer.SendOTPEmail(email, code); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.challenges[key(purpose, email)] = &challenge{
		code:     code,
		issuedAt: v.nowFunc(),
	}
	return nil
}

// Verify checks the candidate against the stored challenge. Outcomes, in
// priority order: ErrExpired (challenge dropped), ErrTooManyAttempts (blocked,
// even when the candidate is correct), success (challenge dropped, so a code
// verifies exactly once), ErrMismatch (attempts incremented).
func (v *Verifier) Verify(purpose, email, candidate string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	k := key(purpose, email)
	ch, ok := v.challenges[k]
	if !ok {
		return ErrNotFound
	}

	if v.nowFunc().Sub(ch.issuedAt) > v.expiry {
		delete(v.challenges, k)
		return ErrExpired
	}
	if ch.attempts >= maxAttempts {
		return ErrTooManyAttempts
	}
	if candidate == ch.code {
		delete(v.challenges, k)
		return nil
	}
	ch.attempts++
	return ErrMismatch
}

// RemainingAttempts reports how many failed verifications are left before the
// challenge blocks. Zero when blocked or when no challenge exists.
func (v *Verifier) RemainingAttempts(purpose, email string) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	ch, ok := v.challenges[key(purpose, email)]
	if !ok {
		return 0
	}
	remaining := maxAttempts - ch.attempts
	if remaining < 0 {
		return 0
	}
	return remaining
}
