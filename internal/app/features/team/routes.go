// internal/app/features/team/routes.go
package team

import (
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// AdminRoutes mounts the admin team pages (typically at "/admin/tim").
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("admin"))

	r.Get("/", h.ServeAdminList)

	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)

	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEdit)

	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
