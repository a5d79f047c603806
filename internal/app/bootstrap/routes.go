// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/datasea-id/webhub/internal/app/features/about"
	authgooglefeature "github.com/datasea-id/webhub/internal/app/features/authgoogle"
	contactfeature "github.com/datasea-id/webhub/internal/app/features/contact"
	dashboardfeature "github.com/datasea-id/webhub/internal/app/features/dashboard"
	dcenterfeature "github.com/datasea-id/webhub/internal/app/features/dcenter"
	errorsfeature "github.com/datasea-id/webhub/internal/app/features/errors"
	eventsfeature "github.com/datasea-id/webhub/internal/app/features/events"
	healthfeature "github.com/datasea-id/webhub/internal/app/features/health"
	homefeature "github.com/datasea-id/webhub/internal/app/features/home"
	loginfeature "github.com/datasea-id/webhub/internal/app/features/login"
	logoutfeature "github.com/datasea-id/webhub/internal/app/features/logout"
	messagesfeature "github.com/datasea-id/webhub/internal/app/features/messages"
	programsfeature "github.com/datasea-id/webhub/internal/app/features/programs"
	sitemapfeature "github.com/datasea-id/webhub/internal/app/features/sitemap"
	teamfeature "github.com/datasea-id/webhub/internal/app/features/team"
	visimisifeature "github.com/datasea-id/webhub/internal/app/features/visimisi"
	volunteersfeature "github.com/datasea-id/webhub/internal/app/features/volunteers"
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/datasea-id/webhub/internal/app/system/botcheck"
	"github.com/datasea-id/webhub/internal/app/system/uploader"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The public site mounts at Indonesian
// paths (/acara, /program-kerja, /tentang, /relawan, /d-center, /kontak);
// the staff back-office lives under /admin behind the session guards.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.SessionIdleTimeout, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	db := deps.MongoDatabase

	// Poster and photo uploads go straight to Cloudinary.
	up := uploader.NewCloudinary(appCfg.CloudinaryCloudName, appCfg.CloudinaryUploadPreset, logger)

	// The contact form verifies a Turnstile token before any write. A
	// missing secret outside production skips verification so local dev
	// works without Cloudflare credentials.
	var verifier botcheck.Verifier = botcheck.NewTurnstile(appCfg.TurnstileSecret, logger)
	if appCfg.TurnstileSecret == "" && !secure {
		logger.Warn("turnstile disabled; accepting all contact submissions")
		verifier = botcheck.AlwaysPass{}
	}

	googleEnabled := appCfg.GoogleClientID != ""
	var oauthCfg *oauth2.Config
	if googleEnabled {
		oauthCfg = &oauth2.Config{
			ClientID:     appCfg.GoogleClientID,
			ClientSecret: appCfg.GoogleClientSecret,
			RedirectURL:  appCfg.BaseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	r := chi.NewRouter()

	// Global auth middleware: loads the SessionUser into context so every
	// handler can call auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Probes, discovery files and static assets sit outside CSRF protection.
	healthHandler := healthfeature.NewHandler(db, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	sitemapHandler := sitemapfeature.NewHandler(db, appCfg.BaseURL, logger)
	sitemapfeature.Mount(r, sitemapHandler)

	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// The contact API takes JSON with its own Turnstile verification, so it
	// is exempt from the cookie-based CSRF check.
	contactHandler := contactfeature.NewHandler(db, errLog, verifier, appCfg.TurnstileSiteKey, logger)
	r.Mount("/api/contact", contactfeature.APIRoutes(contactHandler))

	// Everything that renders HTML forms lives behind gorilla/csrf.
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrf.Secure(secure), csrf.Path("/"))
	r.Group(func(r chi.Router) {
		r.Use(csrfProtect)

		// Public pages. The landing page is registered directly so unknown
		// paths fall through to the custom 404 below.
		homeHandler := homefeature.NewHandler(db, errLog, logger)
		r.Get("/", homeHandler.ServeRoot)

		aboutHandler := aboutfeature.NewHandler(db, errLog, logger)
		r.Mount("/tentang", aboutfeature.Routes(aboutHandler))

		eventsHandler := eventsfeature.NewHandler(db, errLog, up, logger)
		r.Mount("/acara", eventsfeature.Routes(eventsHandler))

		programsHandler := programsfeature.NewHandler(db, errLog, logger)
		r.Mount("/program-kerja", programsfeature.Routes(programsHandler))

		volunteersHandler := volunteersfeature.NewHandler(db, errLog, logger)
		r.Mount("/relawan", volunteersfeature.Routes(volunteersHandler))

		r.Mount("/kontak", contactfeature.Routes(contactHandler))

		dcenterHandler := dcenterfeature.NewHandler(logger)
		r.Mount("/d-center", dcenterfeature.Routes(dcenterHandler))

		// Authentication
		loginHandler := loginfeature.NewHandler(db, errLog, sessionMgr, googleEnabled, logger)
		r.Mount("/login", loginfeature.Routes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
		r.Mount("/logout", logoutfeature.Routes(logoutHandler))

		if googleEnabled {
			googleHandler := authgooglefeature.NewHandler(db, errLog, sessionMgr, oauthCfg, logger)
			r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))
		}

		// Staff back-office
		dashboardHandler := dashboardfeature.NewHandler(db, errLog, logger)
		r.Mount("/admin", dashboardfeature.AdminRoutes(dashboardHandler, sessionMgr))
		r.Mount("/admin/acara", eventsfeature.AdminRoutes(eventsHandler, sessionMgr))
		r.Mount("/admin/program-kerja", programsfeature.AdminRoutes(programsHandler, sessionMgr))

		teamHandler := teamfeature.NewHandler(db, errLog, up, logger)
		r.Mount("/admin/tim", teamfeature.AdminRoutes(teamHandler, sessionMgr))

		visimisiHandler := visimisifeature.NewHandler(db, errLog, logger)
		r.Mount("/admin/visi-misi", visimisifeature.AdminRoutes(visimisiHandler, sessionMgr))

		r.Mount("/admin/relawan", volunteersfeature.AdminRoutes(volunteersHandler, sessionMgr))

		messagesHandler := messagesfeature.NewHandler(db, errLog, logger)
		r.Mount("/admin/pesan", messagesfeature.AdminRoutes(messagesHandler, sessionMgr))

		// Error pages
		errorsHandler := errorsfeature.NewHandler()
		r.Get("/forbidden", errorsHandler.Forbidden)
		r.NotFound(errorsHandler.NotFound)
	})

	return r, nil
}
