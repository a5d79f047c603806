// internal/app/features/programs/routes.go
package programs

import (
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the public work-program page (typically at "/program-kerja").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}

// AdminRoutes mounts the admin work-program pages (typically at
// "/admin/program-kerja").
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
