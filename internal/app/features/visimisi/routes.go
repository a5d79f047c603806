// internal/app/features/visimisi/routes.go
package visimisi

import (
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// AdminRoutes mounts the visi/misi editor (typically at "/admin/visi-misi").
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Use(sm.RequireRole("admin"))

	r.Get("/", h.ServeEdit)
	r.Post("/", h.HandleSave)

	return r
}
