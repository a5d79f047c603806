// internal/app/features/programs/public.go
package programs

import (
	"context"
	"net/http"
	"strings"

	programstore "github.com/datasea-id/webhub/internal/app/store/programs"
	"github.com/datasea-id/webhub/internal/app/system/htmlsanitize"
	"github.com/datasea-id/webhub/internal/app/system/listview"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/datasea-id/webhub/internal/domain/models"
)

// ServeList handles GET /program-kerja. The page shows one kategori tab at a
// time; ?kategori= selects the tab and defaults to Besar.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	kategori := strings.TrimSpace(query.Get(r, "kategori"))
	if !models.ValidProgramKategori(kategori) {
		kategori = models.ProgramKategoriBesar
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := programstore.New(h.DB).ByKategori(ctx, kategori)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load work programs failed", err, "Unable to load work programs.", "/")
		return
	}

	p := listview.ParseParams(r, listview.FilterAll)
	page := publicListConfig().Apply(items, p)

	cards := make([]programCard, 0, len(page.Items))
	for _, prog := range page.Items {
		cards = append(cards, programCard{
			Name:        prog.Name,
			Division:    prog.Division,
			Status:      prog.Status,
			Description: htmlsanitize.PrepareForDisplay(prog.Description),
		})
	}

	data := publicListData{
		BaseVM:   viewdata.NewBaseVM(r, "Program Kerja", "/"),
		Kategori: kategori,
		Page:     page,
		Cards:    cards,
		Query:    p.Query,
	}
	templates.Render(w, r, "programs_public", data)
}
