package home

import (
	"context"
	"net/http"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	eventstore "github.com/datasea-id/webhub/internal/app/store/events"
	programstore "github.com/datasea-id/webhub/internal/app/store/programs"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// homeEventLimit caps the upcoming-events strip on the landing page.
const homeEventLimit = 3

// Handler holds dependencies needed to serve the home page.
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

type homeData struct {
	viewdata.BaseVM
	Events   []models.Event
	Programs []models.WorkProgram
}

// ServeRoot handles GET /, the public landing page. It shows at most three
// upcoming (Segera) events plus the flagship (Besar) work programs; when
// either set is empty the template renders an empty-state message instead.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := eventstore.New(h.DB).Upcoming(ctx, homeEventLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load upcoming events failed", err, "Unable to load upcoming events.", "/")
		return
	}

	programs, err := programstore.New(h.DB).ByKategori(ctx, models.ProgramKategoriBesar)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load flagship programs failed", err, "Unable to load work programs.", "/")
		return
	}

	data := homeData{
		BaseVM:   viewdata.NewBaseVM(r, "Beranda", "/"),
		Events:   events,
		Programs: programs,
	}
	templates.Render(w, r, "home", data)
}
