// internal/app/features/sitemap/handler.go
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	positionstore "github.com/datasea-id/webhub/internal/app/store/positions"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// staticPaths are the public pages every crawl should see. Admin and API
// paths are excluded here and disallowed in robots.txt.
var staticPaths = []string{
	"/",
	"/tentang",
	"/tentang/bph",
	"/tentang/hr",
	"/tentang/public-relation",
	"/tentang/media-kreatif",
	"/tentang/it",
	"/acara",
	"/program-kerja",
	"/relawan",
	"/d-center",
	"/kontak",
}

type Handler struct {
	DB *mongo.Database
	// BaseURL is the canonical site origin, e.g. "https://datasea.id".
	BaseURL string
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Log:     logger,
	}
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc string `xml:"loc"`
}

// ServeSitemap handles GET /sitemap.xml. Closed positions are omitted so
// crawlers never land on a posting that no longer accepts applications.
func (h *Handler) ServeSitemap(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticPaths {
		set.URLs = append(set.URLs, urlEntry{Loc: h.BaseURL + p})
	}

	positions, err := positionstore.New(h.DB).FindOpen(ctx)
	if err != nil {
		// A partial sitemap of the static pages beats a 500 for crawlers.
		h.Log.Warn("sitemap position lookup failed", zap.Error(err))
	}
	for _, pos := range positions {
		set.URLs = append(set.URLs, urlEntry{Loc: fmt.Sprintf("%s/relawan/%s", h.BaseURL, pos.ID.Hex())})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	fmt.Fprint(w, xml.Header)
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		h.Log.Warn("sitemap encode failed", zap.Error(err))
	}
}

// ServeRobots handles GET /robots.txt.
func (h *Handler) ServeRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nDisallow: /admin/\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", h.BaseURL)
}
