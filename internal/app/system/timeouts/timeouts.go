// Package timeouts provides centralized timeout values for handler
// operations. They are used with context.WithTimeout for database and
// outbound HTTP calls so the whole app degrades consistently.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads, form renders
//   - Medium: full-collection list reads, simple writes
//   - Long: writes that follow an external call (image upload, bot verify)
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for simple single-document operations.
func Short() time.Duration { return short }

// Medium returns the timeout for list reads and ordinary writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for operations that include an external call.
func Long() time.Duration { return long }
