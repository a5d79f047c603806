// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g., "/admin/acara").
	// If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are subpath patterns to reject (e.g., "/edit", "/delete").
	// These prevent redirect loops back to action pages.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks both the query parameter and form value for "return", validates
// the URL is safe (not an open redirect), optionally validates the prefix,
// and excludes specified subpaths to prevent redirect loops.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}

	if ret != "" {
		valid := true

		if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
			valid = false
		}

		for _, excluded := range opts.ExcludedSubpaths {
			if strings.Contains(ret, excluded) {
				valid = false
				break
			}
		}

		if valid {
			return ret
		}
	}

	return opts.Fallback
}

// Common back URL configurations for the admin back office.
var (
	// EventsBackURL returns options for admin event pages.
	EventsBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/acara",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/admin/acara",
	}

	// ProgramsBackURL returns options for admin work program pages.
	ProgramsBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/program-kerja",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/admin/program-kerja",
	}

	// TeamBackURL returns options for admin team member pages.
	TeamBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/tim",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/admin/tim",
	}

	// PositionsBackURL returns options for admin volunteer position pages.
	PositionsBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/relawan",
		ExcludedSubpaths: []string{"/edit", "/delete", "/new"},
		Fallback:         "/admin/relawan",
	}

	// MessagesBackURL returns options for admin message pages.
	MessagesBackURL = BackURLOptions{
		AllowedPrefix:    "/admin/pesan",
		ExcludedSubpaths: []string{"/delete"},
		Fallback:         "/admin/pesan",
	}
)
