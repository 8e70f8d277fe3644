package ratelimit

import (
	"fmt"
	"time"
)

// CooldownError is returned by callers of the limiter when an action is
// denied. RetryAfter is the remaining wait the user must be shown.
type CooldownError struct {
	Action     string
	RetryAfter time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("rate limited: wait %s before the next %s", e.RetryAfter.Round(time.Second), e.Action)
}
