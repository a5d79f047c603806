// internal/app/features/dcenter/handler.go
package dcenter

import (
	"net/http"

	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the D-Center page, the showcase of the community's digital
// products and services. The page is static content.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// product is one showcase entry on the D-Center page.
type product struct {
	Category    string
	Name        string
	Description string
	Features    []string
	LinkLabel   string
	LinkURL     string
}

var products = []product{
	{
		Category:    "Akademik & Resource",
		Name:        "Datasea Archive",
		Description: "Platform perpustakaan digital yang menyimpan ribuan aset belajar. Mulai dari modul praktikum, dataset latihan, hingga jurnal riset anggota. Terbuka dan gratis untuk seluruh anggota komunitas.",
		Features: []string{
			"Akses modul praktikum lengkap",
			"Bank dataset untuk machine learning",
			"Arsip jurnal dan paper riset",
		},
		LinkLabel: "Buka Archive",
		LinkURL:   "https://archive-datasea.vercel.app/",
	},
	{
		Category:    "Jasa Profesional",
		Name:        "Web Development Service",
		Description: "Tim divisi IT Datasea siap membantu UMKM, organisasi, atau personal branding Anda untuk go digital. Kami membangun website yang cepat, responsif, dan elegan menggunakan teknologi terbaru.",
		Features: []string{
			"Landing page dan company profile",
			"Aplikasi web custom",
			"Optimasi SEO dan mobile friendly",
		},
		LinkLabel: "Hubungi Kami",
		LinkURL:   "/kontak",
	},
}

type pageData struct {
	viewdata.BaseVM
	Products []product
}

// ServePage handles GET /d-center.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:   viewdata.NewBaseVM(r, "D-Center", "/"),
		Products: products,
	}
	templates.Render(w, r, "dcenter", data)
}
