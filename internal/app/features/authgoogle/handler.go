// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	"github.com/datasea-id/webhub/internal/app/store/oauthstate"
	userstore "github.com/datasea-id/webhub/internal/app/store/users"
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	stateTTL          = 10 * time.Minute
)

// Handler implements Google sign-in for staff. There is no self-signup:
// the Google account must match an existing staff record, either by a
// previously linked subject or by email on first use.
type Handler struct {
	DB         *mongo.Database
	ErrLog     *uierrors.ErrorLogger
	SessionMgr *auth.SessionManager
	OAuth      *oauth2.Config
	// UserInfoURL is overridable in tests; defaults to Google's endpoint.
	UserInfoURL string
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, sm *auth.SessionManager, oauthCfg *oauth2.Config, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		ErrLog:      errLog,
		SessionMgr:  sm,
		OAuth:       oauthCfg,
		UserInfoURL: googleUserInfoURL,
		Log:         logger,
	}
}

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// ServeStart handles GET /auth/google. It stores a one-time state token
// and sends the browser to Google's consent screen.
func (h *Handler) ServeStart(w http.ResponseWriter, r *http.Request) {
	state, err := randomState()
	if err != nil {
		h.ErrLog.LogServerError(w, r, "oauth state generation failed", err, "Unable to start Google sign-in.", "/login")
		return
	}

	// Only same-site return targets are honored after the round trip.
	returnURL := r.URL.Query().Get("return")
	if !strings.HasPrefix(returnURL, "/") || strings.HasPrefix(returnURL, "//") {
		returnURL = ""
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := oauthstate.New(h.DB).Save(ctx, state, returnURL, time.Now().Add(stateTTL)); err != nil {
		h.ErrLog.LogServerError(w, r, "oauth state save failed", err, "Unable to start Google sign-in.", "/login")
		return
	}

	http.Redirect(w, r, h.OAuth.AuthCodeURL(state), http.StatusSeeOther)
}

// ServeCallback handles GET /auth/google/callback.
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("error") != "" {
		// User declined the consent screen.
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	state := r.URL.Query().Get("state")
	returnURL, valid, err := oauthstate.New(h.DB).Validate(ctx, state)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "oauth state validation failed", err, "Google sign-in failed.", "/login")
		return
	}
	if !valid {
		h.ErrLog.LogBadRequest(w, r, "oauth state unknown or expired", nil, "The sign-in link expired. Please try again.", "/login")
		return
	}

	tok, err := h.OAuth.Exchange(ctx, r.URL.Query().Get("code"))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "oauth code exchange failed", err, "Google sign-in failed.", "/login")
		return
	}

	info, err := h.fetchUserInfo(ctx, tok)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "google userinfo fetch failed", err, "Google sign-in failed.", "/login")
		return
	}
	if info.Sub == "" || !info.EmailVerified {
		http.Redirect(w, r, "/login?error=google", http.StatusSeeOther)
		return
	}

	user, err := h.resolveUser(ctx, info)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "google account lookup failed", err, "Google sign-in failed.", "/login")
		return
	}
	if user == nil {
		h.Log.Warn("google sign-in for unknown account", zap.String("sub", info.Sub))
		http.Redirect(w, r, "/login?error=google", http.StatusSeeOther)
		return
	}

	su := auth.SessionUser{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.ErrLog.LogServerError(w, r, "session sign-in failed", err, "Google sign-in failed.", "/login")
		return
	}

	h.Log.Info("staff signed in via google", zap.String("user_id", su.ID))

	if returnURL == "" {
		returnURL = "/admin"
	}
	http.Redirect(w, r, returnURL, http.StatusSeeOther)
}

// resolveUser maps a Google identity onto a staff record. A first-time
// Google sign-in for a known staff email links the subject permanently.
func (h *Handler) resolveUser(ctx context.Context, info googleUserInfo) (*models.User, error) {
	users := userstore.New(h.DB)

	u, err := users.GetByGoogleSub(ctx, info.Sub)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	u, err = users.GetByEmail(ctx, info.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := users.LinkGoogleSub(ctx, u.ID, info.Sub); err != nil {
		return nil, err
	}
	return u, nil
}

func (h *Handler) fetchUserInfo(ctx context.Context, tok *oauth2.Token) (googleUserInfo, error) {
	var info googleUserInfo

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.UserInfoURL, nil)
	if err != nil {
		return info, err
	}
	resp, err := h.OAuth.Client(ctx, tok).Do(req)
	if err != nil {
		return info, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return info, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return info, err
	}
	return info, nil
}

func randomState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
