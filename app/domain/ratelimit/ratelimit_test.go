package ratelimit

import (
	"testing"
	"time"
)

func TestAllowRecordCycle(t *testing.T) {
	l := NewLimiter(15*time.Second, 60*time.Second)
	now := time.Now()
	l.nowFunc = func() time.Time { return now }

	if !l.Allow("u1", ActionChat) {
		t.Fatal("Allow() = false on first action")
	}
	l.Record("u1", ActionChat)

	if l.Allow("u1", ActionChat) {
		t.Fatal("Allow() = true immediately after Record()")
	}

	now = now.Add(14 * time.Second)
	if l.Allow("u1", ActionChat) {
		t.Error("Allow() = true before cooldown elapsed")
	}

	now = now.Add(time.Second)
	if !l.Allow("u1", ActionChat) {
		t.Error("Allow() = false after 15s cooldown elapsed")
	}
}

func TestActionsAndSubjectsIndependent(t *testing.T) {
	l := NewLimiter(15*time.Second, 60*time.Second)
	now := time.Now()
	l.nowFunc = func() time.Time { return now }

	l.Record("u1", ActionChat)

	if !l.Allow("u1", ActionOTP) {
		t.Error("Allow() blocked a different action for the same subject")
	}
	if !l.Allow("u2", ActionChat) {
		t.Error("Allow() blocked the same action for a different subject")
	}

	// otp cooldown is longer than chat
	l.Record("u1", ActionOTP)
	now = now.Add(30 * time.Second)
	if !l.Allow("u1", ActionChat) {
		t.Error("Allow(chat) = false after 30s")
	}
	if l.Allow("u1", ActionOTP) {
		t.Error("Allow(otp) = true after only 30s of a 60s cooldown")
	}
}

func TestUnknownActionDefaultCooldown(t *testing.T) {
	l := NewLimiter(15*time.Second, 60*time.Second)
	now := time.Now()
	l.nowFunc = func() time.Time { return now }

	l.Record("u1", "export")
	if l.Allow("u1", "export") {
		t.Error("Allow() = true within the 1s default cooldown")
	}
	now = now.Add(time.Second)
	if !l.Allow("u1", "export") {
		t.Error("Allow() = false after the 1s default cooldown")
	}
}

func TestRetryAfter(t *testing.T) {
	l := NewLimiter(15*time.Second, 60*time.Second)
	now := time.Now()
	l.nowFunc = func() time.Time { return now }

	if got := l.RetryAfter("u1", ActionChat); got != 0 {
		t.Errorf("RetryAfter() = %v before any action", got)
	}

	l.Record("u1", ActionChat)
	now = now.Add(5 * time.Second)
	if got := l.RetryAfter("u1", ActionChat); got != 10*time.Second {
		t.Errorf("RetryAfter() = %v, want 10s", got)
	}

	now = now.Add(20 * time.Second)
	if got := l.RetryAfter("u1", ActionChat); got != 0 {
		t.Errorf("RetryAfter() = %v after cooldown elapsed", got)
	}
}
