package auth

import "time"

// DefaultIdleTimeout is how long a staff session may sit untouched before it
// is force-signed-out. Matches the back-office policy of ten minutes.
const DefaultIdleTimeout = 10 * time.Minute

// IdleExpired is the idle-timeout policy as a pure function of the
// last-activity timestamp and the current time. Storage and enforcement live
// elsewhere; this is the only place the rule itself is stated.
//
// A zero lastActivity (no activity ever recorded) counts as expired: a
// session without an idle clock is not trusted.
func IdleExpired(lastActivity, now time.Time, threshold time.Duration) bool {
	if lastActivity.IsZero() || lastActivity.Unix() <= 0 {
		return true
	}
	return now.Sub(lastActivity) > threshold
}
