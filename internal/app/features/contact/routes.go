// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

// Routes mounts the contact page (typically at "/kontak").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeContact)
	r.Get("/terima-kasih", h.ServeThanks)
	return r
}

// APIRoutes mounts the JSON submission endpoint (typically at "/api/contact").
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleSubmit)
	return r
}
