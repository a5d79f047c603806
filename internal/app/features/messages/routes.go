// internal/app/features/messages/routes.go
package messages

import (
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// AdminRoutes mounts the admin inbox (typically at "/admin/pesan").
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("admin"))

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	r.Post("/{id}/status", h.HandleSetStatus)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
