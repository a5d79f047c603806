// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the Datasea site.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: WEBHUB_MONGO_URI, WEBHUB_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "datasea", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "webhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_idle_timeout", Default: "10m", Desc: "Idle timeout before staff are signed out (e.g., 10m, 1h)"},
	{Name: "csrf_key", Default: "", Desc: "CSRF signing key (falls back to session_key)"},

	// Cloudinary unsigned uploads
	{Name: "cloudinary_cloud_name", Default: "", Desc: "Cloudinary cloud name for image uploads"},
	{Name: "cloudinary_upload_preset", Default: "", Desc: "Cloudinary unsigned upload preset"},

	// Cloudflare Turnstile
	{Name: "turnstile_site_key", Default: "", Desc: "Turnstile site key rendered on public forms"},
	{Name: "turnstile_secret", Default: "", Desc: "Turnstile secret for server-side verification"},

	// Google OAuth configuration
	{Name: "google_client_id", Default: "", Desc: "Google OAuth2 client ID"},
	{Name: "google_client_secret", Default: "", Desc: "Google OAuth2 client secret"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Canonical public origin (OAuth callback, sitemap)"},

	// First-run bootstrap
	{Name: "bootstrap_admin_email", Default: "", Desc: "Staff email to create when the users collection is empty"},
	{Name: "bootstrap_admin_password", Default: "", Desc: "Password for the bootstrap staff account"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "WEBHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:         appValues.String("session_key"),
		SessionName:        appValues.String("session_name"),
		SessionDomain:      appValues.String("session_domain"),
		SessionIdleTimeout: appValues.Duration("session_idle_timeout", 10*time.Minute),
		CSRFKey:            appValues.String("csrf_key"),

		CloudinaryCloudName:    appValues.String("cloudinary_cloud_name"),
		CloudinaryUploadPreset: appValues.String("cloudinary_upload_preset"),

		TurnstileSiteKey: appValues.String("turnstile_site_key"),
		TurnstileSecret:  appValues.String("turnstile_secret"),

		GoogleClientID:     appValues.String("google_client_id"),
		GoogleClientSecret: appValues.String("google_client_secret"),

		BaseURL: appValues.String("base_url"),

		BootstrapAdminEmail:    appValues.String("bootstrap_admin_email"),
		BootstrapAdminPassword: appValues.String("bootstrap_admin_password"),
	}

	if appCfg.CSRFKey == "" {
		appCfg.CSRFKey = appCfg.SessionKey
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	// Google sign-in needs both halves of the credential.
	if (appCfg.GoogleClientID == "") != (appCfg.GoogleClientSecret == "") {
		return fmt.Errorf("google_client_id and google_client_secret must be set together")
	}

	if appCfg.TurnstileSecret == "" {
		logger.Warn("turnstile_secret is unset; public form verification will reject submissions")
	}
	if appCfg.CloudinaryCloudName == "" || appCfg.CloudinaryUploadPreset == "" {
		logger.Warn("cloudinary is not configured; poster and photo uploads will fail")
	}

	return nil
}
