// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS). AppConfig is everything specific to this site:
// database, sessions, upload and bot-check credentials, OAuth.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey         string // secret for signing session cookies; must be strong in production
	SessionName        string // session cookie name
	SessionDomain      string // cookie domain (blank means current host)
	SessionIdleTimeout time.Duration

	// CSRFKey signs the gorilla/csrf cookie. Falls back to SessionKey when blank.
	CSRFKey string

	// Cloudinary unsigned uploads for event posters and member photos
	CloudinaryCloudName    string
	CloudinaryUploadPreset string

	// Cloudflare Turnstile for the public contact and volunteer forms
	TurnstileSiteKey string
	TurnstileSecret  string

	// Google OAuth for staff sign-in. Optional; the password form always works.
	GoogleClientID     string
	GoogleClientSecret string

	// BaseURL is the canonical public origin, used for the OAuth callback,
	// the sitemap and robots.txt.
	BaseURL string

	// BootstrapAdminEmail and BootstrapAdminPassword seed a first staff
	// account when the users collection is empty, so a fresh deployment
	// has someone who can sign in.
	BootstrapAdminEmail    string
	BootstrapAdminPassword string
}
