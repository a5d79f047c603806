package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAuthKey       = "is_authenticated"
	userIDKey       = "user_id"
	userNameKey     = "user_name"
	userEmailKey    = "user_email"
	userRoleKey     = "user_role"
	lastActivityKey = "last_activity"
)

// SessionUser is what we cache in the session & inject into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// SessionManager owns the cookie session store and the idle-timeout policy.
// Handlers never touch gorilla/sessions directly; they go through this.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	idle  time.Duration
	log   *zap.Logger
}

// NewSessionManager builds a SessionManager. The `secure` flag controls
// whether cookies are marked Secure and which SameSite mode is used; use
// false for local dev over http://localhost.
func NewSessionManager(sessionKey, sessionName, domain string, idleTimeout time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.Duration("idle_timeout", idleTimeout))

	return &SessionManager{
		store: store,
		name:  sessionName,
		idle:  idleTimeout,
		log:   logger,
	}, nil
}

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// SignIn writes the user into the session cookie and starts the idle clock.
// A request arriving with a stale or tampered cookie still gets a fresh
// session; Get returns one alongside the error.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u SessionUser) error {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			sm.log.Warn("session cookie invalid, issuing a fresh session", zap.Error(err))
		} else {
			sm.log.Error("session store error during sign-in, issuing a fresh session", zap.Error(err))
		}
	}
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	sess.Values[userNameKey] = u.Name
	sess.Values[userEmailKey] = u.Email
	sess.Values[userRoleKey] = u.Role
	sess.Values[lastActivityKey] = time.Now().Unix()
	return sess.Save(r, w)
}

// SignOut clears the session cookie.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) {
	sess, _ := sm.store.Get(r, sm.name)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		sm.log.Warn("session clear failed", zap.Error(err))
	}
}

// LoadSessionUser injects the user into context if they are signed in and
// the session has not idled out. Every authenticated request refreshes the
// last-activity timestamp, so the idle clock measures real inactivity.
// An expired session is cleared here; the guards then treat the request as
// signed out and redirect with the expired flag.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.store.Get(r, sm.name)

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			last, _ := sess.Values[lastActivityKey].(int64)
			if IdleExpired(time.Unix(last, 0), time.Now(), sm.idle) {
				sm.log.Info("session idle timeout",
					zap.String("user_id", getString(sess, userIDKey)))
				sm.SignOut(w, r)
				r = withIdleExpired(r)
			} else {
				sess.Values[lastActivityKey] = time.Now().Unix()
				if err := sess.Save(r, w); err != nil {
					sm.log.Warn("session activity refresh failed", zap.Error(err))
				}
				u := &SessionUser{
					ID:    getString(sess, userIDKey),
					Name:  getString(sess, userNameKey),
					Email: getString(sess, userEmailKey),
					Role:  getString(sess, userRoleKey),
				}
				r = withUser(r, u)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// If not signed in:
//   - HTML: 303 redirect to /login?return=... (plus expired=1 after an idle
//     timeout, so the login page can explain the forced sign-out)
//   - API:  401 Unauthorized with a plain error body.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		dest := "/login?return=" + url.QueryEscape(currentURI(r))
		if wasIdleExpired(r) {
			dest += "&expired=1"
		}

		if wantsHTML(r) {
			http.Redirect(w, r, dest, http.StatusSeeOther)
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

// RequireRole ensures the signed-in user has one of the allowed roles.
// Not signed in keeps 401 semantics; the wrong role gets 403 semantics with
// a redirect to a friendly page for HTML callers.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				dest := "/login?return=" + url.QueryEscape(currentURI(r))
				if wasIdleExpired(r) {
					dest += "&expired=1"
				}
				if wantsHTML(r) {
					http.Redirect(w, r, dest, http.StatusSeeOther)
					return
				}
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if _, has := set[strings.ToLower(u.Role)]; !has {
				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithTestUser injects a user into the request context. Test helper; handlers
// must never call this.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// helpers

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

const idleExpiredKey ctxKey = "idleExpired"

func withIdleExpired(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), idleExpiredKey, true))
}

func wasIdleExpired(r *http.Request) bool {
	v, _ := r.Context().Value(idleExpiredKey).(bool)
	return v
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
