// internal/app/features/volunteers/admin.go
package volunteers

import (
	"context"
	"net/http"
	"strings"

	positionstore "github.com/datasea-id/webhub/internal/app/store/positions"
	"github.com/datasea-id/webhub/internal/app/system/formutil"
	"github.com/datasea-id/webhub/internal/app/system/htmlsanitize"
	"github.com/datasea-id/webhub/internal/app/system/inputval"
	"github.com/datasea-id/webhub/internal/app/system/listview"
	"github.com/datasea-id/webhub/internal/app/system/navigation"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const adminPageSize = 10

// positionFormInput defines validation rules for a new position.
type positionFormInput struct {
	Title    string `validate:"required,max=150" label:"Judul"`
	Division string `validate:"required" label:"Divisi"`
	Type     string `validate:"required" label:"Tipe"`
}

func adminListConfig() listview.Config[models.Position] {
	return listview.Config[models.Position]{
		PageSize: adminPageSize,
		SearchText: func(p models.Position) []string {
			return []string{p.Title, p.Division}
		},
		// Dibuka/Ditutup tabs over the isOpen flag.
		FilterValue: func(p models.Position) string {
			if p.IsOpen {
				return "Dibuka"
			}
			return "Ditutup"
		},
	}
}

type adminListData struct {
	viewdata.BaseVM
	Page    listview.Page[models.Position]
	Query   string
	Filter  string
	Filters []string
}

type positionFormVM struct {
	formutil.Base
	PositionTitle string
	Division      string
	Type          string
	Description   string
	Requirements  string // one requirement per line
	Divisions     []string
	Types         []string
}

// ServeAdminList handles GET /admin/relawan.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := positionstore.New(h.DB).All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load positions failed", err, "Unable to load positions.", "/admin")
		return
	}

	p := listview.ParseParams(r, listview.FilterAll)
	page := adminListConfig().Apply(all, p)

	data := adminListData{
		BaseVM:  viewdata.NewBaseVM(r, "Kelola Relawan", "/admin"),
		Page:    page,
		Query:   p.Query,
		Filter:  p.Filter,
		Filters: []string{"Dibuka", "Ditutup"},
	}
	templates.Render(w, r, "volunteers_admin", data)
}

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	vm := positionFormVM{
		Division:  models.DivisionBPH,
		Type:      models.PositionTypes[0],
		Divisions: models.Divisions,
		Types:     models.PositionTypes,
	}
	formutil.SetBase(&vm.Base, r, "Buka Posisi Relawan", "/admin/relawan")
	templates.Render(w, r, "position_form", vm)
}

// HandleCreate handles POST /admin/relawan. New positions always start open.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.FormValue("title"))
	division := strings.TrimSpace(r.FormValue("division"))
	posType := strings.TrimSpace(r.FormValue("type"))
	description := htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("description")))
	requirementsRaw := r.FormValue("requirements")

	reRender := func(msg string) {
		vm := positionFormVM{
			PositionTitle: title,
			Division:      division,
			Type:          posType,
			Description:   description,
			Requirements:  requirementsRaw,
			Divisions:     models.Divisions,
			Types:         models.PositionTypes,
		}
		formutil.SetBase(&vm.Base, r, "Buka Posisi Relawan", "/admin/relawan")
		vm.SetError(msg)
		templates.Render(w, r, "position_form", vm)
	}

	input := positionFormInput{Title: title, Division: division, Type: posType}
	if result := inputval.Validate(input); result.HasErrors() {
		reRender(result.First())
		return
	}
	if !validPositionType(posType) {
		reRender("Tipe is invalid.")
		return
	}

	var requirements []string
	for _, line := range strings.Split(requirementsRaw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			requirements = append(requirements, line)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pos := models.Position{
		Title:        title,
		Division:     division,
		Type:         posType,
		Description:  description,
		Requirements: requirements,
	}
	if _, err := positionstore.New(h.DB).Create(ctx, pos); err != nil {
		h.Log.Error("create position failed", zap.Error(err))
		reRender("Database error while creating the position.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.PositionsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// HandleToggle handles POST /admin/relawan/{id}/toggle and flips the
// open/closed state.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid position id", err, "Invalid position ID.", "/admin/relawan")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := positionstore.New(h.DB)
	pos, err := store.GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "position not found", "Position not found.", "/admin/relawan")
		return
	}

	if _, err := store.SetOpen(ctx, oid, !pos.IsOpen); err != nil {
		h.ErrLog.LogServerError(w, r, "toggle position failed", err, "Unable to update the position.", "/admin/relawan")
		return
	}
	h.Log.Info("position toggled",
		zap.String("position_id", oid.Hex()),
		zap.Bool("is_open", !pos.IsOpen))

	ret := navigation.SafeBackURL(r, navigation.PositionsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

type positionDeleteData struct {
	viewdata.BaseVM
	PositionID    string
	PositionTitle string
}

// ServeDeleteConfirm handles GET /admin/relawan/{id}/delete.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid position id", err, "Invalid position ID.", "/admin/relawan")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pos, err := positionstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "position not found", "Position not found.", "/admin/relawan")
		return
	}

	data := positionDeleteData{
		BaseVM:        viewdata.NewBaseVM(r, "Hapus Posisi", "/admin/relawan"),
		PositionID:    pos.ID.Hex(),
		PositionTitle: pos.Title,
	}
	templates.Render(w, r, "position_delete", data)
}

// HandleDelete handles POST /admin/relawan/{id}/delete. Applications keep
// their copied job title, so they survive the posting.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid position id", err, "Invalid position ID.", "/admin/relawan")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := positionstore.New(h.DB).Delete(ctx, oid); err != nil {
		h.ErrLog.LogServerError(w, r, "delete position failed", err, "Unable to delete the position.", "/admin/relawan")
		return
	}
	h.Log.Info("position deleted", zap.String("position_id", oid.Hex()))

	ret := navigation.SafeBackURL(r, navigation.PositionsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func validPositionType(t string) bool {
	for _, v := range models.PositionTypes {
		if t == v {
			return true
		}
	}
	return false
}
