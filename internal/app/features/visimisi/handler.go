// internal/app/features/visimisi/handler.go
package visimisi

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	visimisistore "github.com/datasea-id/webhub/internal/app/store/visimisi"
	"github.com/datasea-id/webhub/internal/app/system/authz"
	"github.com/datasea-id/webhub/internal/app/system/formutil"
	"github.com/datasea-id/webhub/internal/app/system/htmlsanitize"
	"github.com/datasea-id/webhub/internal/app/system/inputval"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/datasea-id/webhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin visi/misi editor. The document is a singleton;
// saving always upserts the same record.
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

type editInput struct {
	Vision string `validate:"required" label:"Visi"`
}

type editFormVM struct {
	formutil.Base
	Vision     string
	Missions   string // one mission per line in the textarea
	ChairQuote string
	Saved      bool
}

// ServeEdit handles GET /admin/visi-misi.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	vm, err := visimisistore.New(h.DB).Get(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load visi misi failed", err, "Unable to load visi/misi.", "/admin")
		return
	}

	data := editFormVM{
		Vision:     vm.Vision,
		Missions:   strings.Join(vm.Missions, "\n"),
		ChairQuote: vm.ChairQuote,
		Saved:      r.URL.Query().Get("saved") == "1",
	}
	formutil.SetBase(&data.Base, r, "Visi & Misi", "/admin")
	templates.Render(w, r, "visimisi_form", data)
}

// HandleSave handles POST /admin/visi-misi. Missions arrive one per line;
// blank lines are dropped by the store.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	vision := htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("visi")))
	missionsRaw := r.FormValue("misi")
	chairQuote := strings.TrimSpace(r.FormValue("quote_ketua"))

	var missions []string
	for _, line := range strings.Split(missionsRaw, "\n") {
		missions = append(missions, strings.TrimSpace(line))
	}

	reRender := func(msg string) {
		data := editFormVM{
			Vision:     vision,
			Missions:   missionsRaw,
			ChairQuote: chairQuote,
		}
		formutil.SetBase(&data.Base, r, "Visi & Misi", "/admin")
		data.SetError(msg)
		templates.Render(w, r, "visimisi_form", data)
	}

	if result := inputval.Validate(editInput{Vision: vision}); result.HasErrors() {
		reRender(result.First())
		return
	}

	_, _, userID, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	doc := models.VisionMission{
		Vision:     vision,
		Missions:   missions,
		ChairQuote: chairQuote,
	}
	if _, err := visimisistore.New(h.DB).Save(ctx, doc, userID); err != nil {
		h.Log.Error("save visi misi failed", zap.Error(err))
		reRender("Database error while saving.")
		return
	}

	http.Redirect(w, r, "/admin/visi-misi?saved=1", http.StatusSeeOther)
}
