// internal/app/features/about/routes.go
package about

import "github.com/go-chi/chi/v5"

// Routes mounts the about page and the per-division profile pages
// (typically at "/tentang").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAbout)
	r.Get("/{slug}", h.ServeDivision)
	return r
}
