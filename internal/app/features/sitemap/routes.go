// internal/app/features/sitemap/routes.go
package sitemap

import "github.com/go-chi/chi/v5"

// Mount attaches the discovery files at their fixed root paths.
func Mount(r chi.Router, h *Handler) {
	r.Get("/sitemap.xml", h.ServeSitemap)
	r.Get("/robots.txt", h.ServeRobots)
}
