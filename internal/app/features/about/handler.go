// internal/app/features/about/handler.go
package about

import (
	"context"
	"html/template"
	"net/http"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	teamstore "github.com/datasea-id/webhub/internal/app/store/team"
	visimisistore "github.com/datasea-id/webhub/internal/app/store/visimisi"
	"github.com/datasea-id/webhub/internal/app/system/htmlsanitize"
	"github.com/datasea-id/webhub/internal/app/system/listview"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/datasea-id/webhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const teamPageSize = 6

// Handler serves the public about page: visi/misi plus the team grid.
type Handler struct {
	DB     *mongo.Database
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Log:    logger,
	}
}

// teamListConfig pages the team grid; the filter narrows by division.
func teamListConfig() listview.Config[models.TeamMember] {
	return listview.Config[models.TeamMember]{
		PageSize: teamPageSize,
		SearchText: func(m models.TeamMember) []string {
			return []string{m.Name, m.Role}
		},
		FilterValue: func(m models.TeamMember) string { return m.Division },
	}
}

type aboutData struct {
	viewdata.BaseVM
	Vision     template.HTML
	Missions   []string
	ChairQuote string
	Team       listview.Page[models.TeamMember]
	Query      string
	Filter     string
	Divisions  []string
	Profiles   []divisionProfile
}

// ServeAbout handles GET /tentang. BPH members always lead the team grid;
// within a division the order is alphabetical.
func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	vm, err := visimisistore.New(h.DB).Get(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load visi misi failed", err, "Unable to load the page.", "/")
		return
	}

	members, err := teamstore.New(h.DB).All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load team failed", err, "Unable to load the page.", "/")
		return
	}

	p := listview.ParseParams(r, listview.FilterAll)
	page := teamListConfig().Apply(members, p)

	data := aboutData{
		BaseVM:     viewdata.NewBaseVM(r, "Tentang Kami", "/"),
		Vision:     htmlsanitize.PrepareForDisplay(vm.Vision),
		Missions:   vm.Missions,
		ChairQuote: vm.ChairQuote,
		Team:       page,
		Query:      p.Query,
		Filter:     p.Filter,
		Divisions:  models.Divisions,
		Profiles:   divisionProfiles,
	}
	templates.Render(w, r, "about", data)
}
