// internal/app/features/dcenter/routes.go
package dcenter

import "github.com/go-chi/chi/v5"

// Routes mounts the D-Center page (typically at "/d-center").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePage)
	return r
}
