// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	userstore "github.com/datasea-id/webhub/internal/app/store/users"
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/datasea-id/webhub/internal/app/system/formutil"
	"github.com/datasea-id/webhub/internal/app/system/normalize"
	"github.com/datasea-id/webhub/internal/app/system/ratelimit"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// failMsg is deliberately the same for an unknown email, a wrong password
// and a Google-only account, so the form never confirms which emails exist.
const failMsg = "Email atau kata sandi salah."

type Handler struct {
	DB         *mongo.Database
	ErrLog     *uierrors.ErrorLogger
	SessionMgr *auth.SessionManager
	// GoogleEnabled shows the "continue with Google" link when OAuth is configured.
	GoogleEnabled bool
	Limiter       *ratelimit.LoginLimiter
	Log           *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, sm *auth.SessionManager, googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		DB:            db,
		ErrLog:        errLog,
		SessionMgr:    sm,
		GoogleEnabled: googleEnabled,
		Limiter:       ratelimit.NewLoginLimiter(),
		Log:           logger,
	}
}

type loginFormVM struct {
	formutil.Base
	Email         string
	GoogleEnabled bool
}

// ServeForm handles GET /login.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	data := loginFormVM{GoogleEnabled: h.GoogleEnabled}
	formutil.SetBase(&data.Base, r, "Masuk", "/")
	// The auth guard appends expired=1 after an idle sign-out; the Google
	// callback redirects with error=google for unregistered accounts.
	if r.URL.Query().Get("expired") == "1" {
		data.SetError("Sesi Anda telah berakhir. Silakan masuk kembali.")
	} else if r.URL.Query().Get("error") == "google" {
		data.SetError("Akun Google ini tidak terdaftar sebagai staf.")
	}
	templates.Render(w, r, "login", data)
}

// HandleLogin handles POST /login.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")

	reRender := func(msg string) {
		data := loginFormVM{Email: email, GoogleEnabled: h.GoogleEnabled}
		formutil.SetBase(&data.Base, r, "Masuk", "/")
		data.SetError(msg)
		templates.Render(w, r, "login", data)
	}

	if email == "" || strings.TrimSpace(password) == "" {
		reRender("Email dan kata sandi wajib diisi.")
		return
	}

	if allowed, msg := h.Limiter.Check(r, email); !allowed {
		h.Log.Warn("login rate limited",
			zap.String("ip", ratelimit.ClientIP(r)))
		reRender(msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := userstore.New(h.DB).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			reRender(failMsg)
			return
		}
		h.Log.Error("login lookup failed", zap.Error(err))
		reRender("Database error while signing in.")
		return
	}

	// Google-only accounts have no password hash; bcrypt fails on empty input.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		reRender(failMsg)
		return
	}

	su := auth.SessionUser{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.Log.Error("session sign-in failed", zap.Error(err))
		reRender("Unable to start a session. Please try again.")
		return
	}

	h.Limiter.ResetEmail(email)
	h.Log.Info("staff signed in",
		zap.String("user_id", su.ID),
		zap.String("role", su.Role))

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
