package otp

import (
	"errors"
	"testing"
	"time"
)

type captureMailer struct {
	lastAddress string
	lastCode    string
	sendErr     error
	sent        int
}

func (m *captureMailer) SendOTPEmail(address, code string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent++
	m.lastAddress = address
	m.lastCode = code
	return nil
}

func wrongCode(code string) string {
	if code[0] == '0' {
		return "1" + code[1:]
	}
	return "0" + code[1:]
}

func TestIssueSendsSixDigitCode(t *testing.T) {
	mailer := &captureMailer{}
	v := NewVerifier(mailer, 3*time.Minute)

	if err := v.Issue(PurposeReminderCreate, "a@b.com"); err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if mailer.lastAddress != "a@b.com" {
		t.Errorf("mailer address = %s", mailer.lastAddress)
	}
	if len(mailer.lastCode) != 6 {
		t.Errorf("code %q is not six digits", mailer.lastCode)
	}
	for _, r := range mailer.lastCode {
		if r < '0' || r > '9' {
			t.Errorf("code %q contains a non-digit", mailer.lastCode)
		}
	}
}

func TestIssueMailFailureKeepsNoChallenge(t *testing.T) {
	mailErr := errors.New("smtp down")
	mailer := &captureMailer{sendErr: mailErr}
	v := NewVerifier(mailer, 3*time.Minute)

	if err := v.Issue(PurposeReminderCreate, "a@b.com"); !errors.Is(err, mailErr) {
		t.Fatalf("Issue() error = %v, want mail error", err)
	}
	if err := v.Verify(PurposeReminderCreate, "a@b.com", "000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Verify() error = %v, want ErrNotFound", err)
	}
}

func TestVerifySucceedsExactlyOnce(t *testing.T) {
	mailer := &captureMailer{}
	v := NewVerifier(mailer, 3*time.Minute)
	_ = v.Issue(PurposeReminderCreate, "a@b.com")

	if err := v.Verify(PurposeReminderCreate, "a@b.com", mailer.lastCode); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	// the challenge is cleared on success, replays must fail
	if err := v.Verify(PurposeReminderCreate, "a@b.com", mailer.lastCode); !errors.Is(err, ErrNotFound) {
		t.Errorf("replayed Verify() error = %v, want ErrNotFound", err)
	}
}

func TestVerifyAttemptsExhaust(t *testing.T) {
	mailer := &captureMailer{}
	v := NewVerifier(mailer, 3*time.Minute)
	_ = v.Issue(PurposeReminderCreate, "a@b.com")
	bad := wrongCode(mailer.lastCode)

	for i := 1; i <= 3; i++ {
		if err := v.Verify(PurposeReminderCreate, "a@b.com", bad); !errors.Is(err, ErrMismatch) {
			t.Fatalf("attempt %d: Verify() error = %v, want ErrMismatch", i, err)
		}
		if got := v.RemainingAttempts(PurposeReminderCreate, "a@b.com"); got != 3-i {
			t.Errorf("attempt %d: RemainingAttempts() = %d, want %d", i, got, 3-i)
		}
	}

	// blocked even with the correct code
	if err := v.Verify(PurposeReminderCreate, "a@b.com", mailer.lastCode); !errors.Is(err, ErrTooManyAttempts) {
		t.Errorf("Verify() error = %v, want ErrTooManyAttempts", err)
	}

	// re-issue restarts the state machine
	_ = v.Issue(PurposeReminderCreate, "a@b.com")
	if err := v.Verify(PurposeReminderCreate, "a@b.com", mailer.lastCode); err != nil {
		t.Errorf("Verify() after re-issue error = %v", err)
	}
}

func TestVerifyExpiry(t *testing.T) {
	mailer := &captureMailer{}
	v := NewVerifier(mailer, 3*time.Minute)

	now := time.Now()
	v.nowFunc = func() time.Time { return now }
	_ = v.Issue(PurposeReminderCreate, "a@b.com")

	now = now.Add(3*time.Minute + time.Second)
	if err := v.Verify(PurposeReminderCreate, "a@b.com", mailer.lastCode); !errors.Is(err, ErrExpired) {
		t.Fatalf("Verify() error = %v, want ErrExpired", err)
	}
	// expiry drops the challenge entirely
	if err := v.Verify(PurposeReminderCreate, "a@b.com", mailer.lastCode); !errors.Is(err, ErrNotFound) {
		t.Errorf("Verify() after expiry error = %v, want ErrNotFound", err)
	}
}

func TestPurposesDoNotShareKeySpace(t *testing.T) {
	mailer := &captureMailer{}
	v := NewVerifier(mailer, 3*time.Minute)

	_ = v.Issue(PurposeReminderCreate, "a@b.com")
	createCode := mailer.lastCode

	if err := v.Verify(PurposeReminderDelete, "a@b.com", createCode); !errors.Is(err, ErrNotFound) {
		t.Errorf("Verify() with other purpose error = %v, want ErrNotFound", err)
	}
	if err := v.Verify(PurposeReminderCreate, "a@b.com", createCode); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}
