package ratelimit

import (
	"sync"
	"time"
)

const (
	ActionChat = "chat"
	ActionOTP  = "otp"
)

// Limiter enforces a per (subject, action) cooldown: a new action is allowed
// only once the configured cooldown has elapsed since the last recorded one.
// State is held in process memory and lives as long as the server; nothing is
// persisted.
type Limiter struct {
	mu        sync.Mutex
	cooldowns map[string]time.Duration
	last      map[string]time.Time
	nowFunc   func() time.Time
}

func NewLimiter(chatCooldown, otpCooldown time.Duration) *Limiter {
	return &Limiter{
		cooldowns: map[string]time.Duration{
			ActionChat: chatCooldown,
			ActionOTP:  otpCooldown,
		},
		last:    make(map[string]time.Time),
		nowFunc: time.Now,
	}
}

func (l *Limiter) cooldown(action string) time.Duration {
	if d, ok := l.cooldowns[action]; ok {
		return d
	}
	return time.Second
}

func key(subjectID, action string) string {
	return subjectID + ":" + action
}

// Allow reports whether the subject may perform the action now. It does not
// record anything; callers must call Record after the gated operation succeeds.
func (l *Limiter) Allow(subjectID, action string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	last, ok := l.last[key(subjectID, action)]
	if !ok {
		return true
	}
	return l.nowFunc().Sub(last) >= l.cooldown(action)
}

// Record stamps the action as performed now, overwriting any prior timestamp.
func (l *Limiter) Record(subjectID, action string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last[key(subjectID, action)] = l.nowFunc()
}

// RetryAfter returns how long the subject must still wait before the action is
// allowed again. Zero means the action is allowed now.
func (l *Limiter) RetryAfter(subjectID, action string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	last, ok := l.last[key(subjectID, action)]
	if !ok {
		return 0
	}
	remaining := l.cooldown(action) - l.nowFunc().Sub(last)
	if remaining < 0 {
		return 0
	}
	return remaining
}
