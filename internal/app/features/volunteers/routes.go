// internal/app/features/volunteers/routes.go
package volunteers

import (
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the public volunteer pages (typically at "/relawan").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeDetail)
	r.Post("/{id}/apply", h.HandleApply)
	return r
}

// AdminRoutes mounts the admin position pages (typically at "/admin/relawan").
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("admin"))

	r.Get("/", h.ServeAdminList)

	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)

	r.Post("/{id}/toggle", h.HandleToggle)

	r.Get("/{id}/delete", h.ServeDeleteConfirm)
	r.Post("/{id}/delete", h.HandleDelete)

	return r
}
