// internal/app/features/volunteers/public.go
package volunteers

import (
	"context"
	"html/template"
	"net/http"
	"strings"

	applicantstore "github.com/datasea-id/webhub/internal/app/store/applicants"
	positionstore "github.com/datasea-id/webhub/internal/app/store/positions"
	"github.com/datasea-id/webhub/internal/app/system/htmlsanitize"
	"github.com/datasea-id/webhub/internal/app/system/inputval"
	"github.com/datasea-id/webhub/internal/app/system/listview"
	"github.com/datasea-id/webhub/internal/app/system/normalize"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const publicPageSize = 10

func publicListConfig() listview.Config[models.Position] {
	return listview.Config[models.Position]{
		PageSize: publicPageSize,
		SearchText: func(p models.Position) []string {
			return []string{p.Title, p.Division}
		},
		FilterValue: func(p models.Position) string { return p.Division },
	}
}

type publicListData struct {
	viewdata.BaseVM
	Page      listview.Page[models.Position]
	Query     string
	Filter    string
	Divisions []string
}

type detailData struct {
	viewdata.BaseVM
	Position     models.Position
	Description  template.HTML
	Applied      bool
	FormError    string
	Name         string
	Email        string
	Whatsapp     string
	LinkedinURL  string
	Reason       string
}

// applyInput defines validation rules for a volunteer application.
type applyInput struct {
	Name     string `validate:"required,max=120" label:"Nama"`
	Email    string `validate:"required,max=254" label:"Email"`
	Whatsapp string `validate:"required,max=20" label:"Nomor WhatsApp"`
	Reason   string `validate:"required,max=2000" label:"Alasan"`
}

// ServeList handles GET /relawan. Only open positions are listed, newest
// first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	open, err := positionstore.New(h.DB).FindOpen(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load open positions failed", err, "Unable to load volunteer positions.", "/")
		return
	}

	p := listview.ParseParams(r, listview.FilterAll)
	page := publicListConfig().Apply(open, p)

	data := publicListData{
		BaseVM:    viewdata.NewBaseVM(r, "Relawan", "/"),
		Page:      page,
		Query:     p.Query,
		Filter:    p.Filter,
		Divisions: models.Divisions,
	}
	templates.Render(w, r, "volunteers_public", data)
}

// ServeDetail handles GET /relawan/{id}: the posting plus the application
// form. Closed positions still render, without the form.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	pos, ok := h.loadPosition(w, r)
	if !ok {
		return
	}

	data := detailData{
		BaseVM:      viewdata.NewBaseVM(r, pos.Title, "/relawan"),
		Position:    pos,
		Description: htmlsanitize.PrepareForDisplay(pos.Description),
		Applied:     r.URL.Query().Get("applied") == "1",
	}
	templates.Render(w, r, "volunteer_detail", data)
}

// HandleApply handles POST /relawan/{id}/apply. Unlike the contact form,
// an application carries no challenge token: the form only appears on an
// open position's detail page, so field validation alone gates the write.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	pos, ok := h.loadPosition(w, r)
	if !ok {
		return
	}
	if !pos.IsOpen {
		http.Redirect(w, r, "/relawan", http.StatusSeeOther)
		return
	}

	name := normalize.Name(r.FormValue("name"))
	email := normalize.Email(r.FormValue("email"))
	whatsapp := strings.TrimSpace(r.FormValue("whatsapp"))
	linkedin := strings.TrimSpace(r.FormValue("linkedin_url"))
	reason := strings.TrimSpace(r.FormValue("reason"))

	reRender := func(msg string) {
		data := detailData{
			BaseVM:      viewdata.NewBaseVM(r, pos.Title, "/relawan"),
			Position:    pos,
			Description: htmlsanitize.PrepareForDisplay(pos.Description),
			FormError:   msg,
			Name:        name,
			Email:       email,
			Whatsapp:    whatsapp,
			LinkedinURL: linkedin,
			Reason:      reason,
		}
		templates.Render(w, r, "volunteer_detail", data)
	}

	input := applyInput{Name: name, Email: email, Whatsapp: whatsapp, Reason: reason}
	if result := inputval.Validate(input); result.HasErrors() {
		reRender(result.First())
		return
	}
	if !inputval.IsValidEmail(email) {
		reRender("Email is invalid.")
		return
	}
	if linkedin != "" && !urlutil.IsValidAbsHTTPURL(linkedin) {
		reRender("LinkedIn URL must be a valid absolute URL.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	app := models.Applicant{
		JobID:       pos.ID.Hex(),
		JobTitle:    pos.Title,
		Name:        name,
		Email:       email,
		Whatsapp:    whatsapp,
		LinkedinURL: linkedin,
		Reason:      reason,
	}
	if _, err := applicantstore.New(h.DB).Create(ctx, app); err != nil {
		h.Log.Error("create applicant failed", zap.Error(err))
		reRender("Database error while submitting. Please try again.")
		return
	}

	http.Redirect(w, r, "/relawan/"+pos.ID.Hex()+"?applied=1", http.StatusSeeOther)
}

func (h *Handler) loadPosition(w http.ResponseWriter, r *http.Request) (models.Position, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid position id", err, "Invalid position ID.", "/relawan")
		return models.Position{}, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pos, err := positionstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "position not found", "Position not found.", "/relawan")
		return models.Position{}, false
	}
	return pos, true
}
