// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/datasea-id/webhub/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		SessionMgr: sm,
		Log:        logger,
	}
}

// ServeLogout handles GET and POST /logout. Signing out an anonymous
// visitor is a no-op, so no guard middleware is needed here.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("staff signed out", zap.String("user_id", u.ID))
	}
	h.SessionMgr.SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
