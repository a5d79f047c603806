// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// AdminRoutes mounts the dashboard (typically at "/admin").
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("admin"))

	r.Get("/", h.ServeDashboard)

	return r
}
