// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	eventstore "github.com/datasea-id/webhub/internal/app/store/events"
	messagestore "github.com/datasea-id/webhub/internal/app/store/messages"
	positionstore "github.com/datasea-id/webhub/internal/app/store/positions"
	programstore "github.com/datasea-id/webhub/internal/app/store/programs"
	teamstore "github.com/datasea-id/webhub/internal/app/store/team"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// recentMessageLimit caps the incoming-messages strip on the dashboard.
const recentMessageLimit = 5

// Handler serves the admin landing page with content counts.
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

type dashboardData struct {
	viewdata.BaseVM
	EventCount    int64
	ProgramCount  int64
	TeamCount     int64
	OpenPositions int64
	NewMessages   int64
	Recent        []models.Message
}

// ServeDashboard handles GET /admin.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := eventstore.New(h.DB).Count(ctx, bson.M{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count events failed", err, "Unable to load the dashboard.", "/admin")
		return
	}
	programs, err := programstore.New(h.DB).Count(ctx, bson.M{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count programs failed", err, "Unable to load the dashboard.", "/admin")
		return
	}
	team, err := teamstore.New(h.DB).Count(ctx, bson.M{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count team failed", err, "Unable to load the dashboard.", "/admin")
		return
	}
	openPositions, err := positionstore.New(h.DB).Count(ctx, bson.M{"isOpen": true})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count open positions failed", err, "Unable to load the dashboard.", "/admin")
		return
	}
	msgStore := messagestore.New(h.DB)
	newMessages, err := msgStore.CountNew(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count new messages failed", err, "Unable to load the dashboard.", "/admin")
		return
	}
	recent, err := msgStore.Recent(ctx, recentMessageLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load recent messages failed", err, "Unable to load the dashboard.", "/admin")
		return
	}

	data := dashboardData{
		BaseVM:        viewdata.NewBaseVM(r, "Dasbor", "/admin"),
		EventCount:    events,
		ProgramCount:  programs,
		TeamCount:     team,
		OpenPositions: openPositions,
		NewMessages:   newMessages,
		Recent:        recent,
	}
	templates.Render(w, r, "dashboard", data)
}
