// internal/app/features/team/admin.go
package team

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	teamstore "github.com/datasea-id/webhub/internal/app/store/team"
	"github.com/datasea-id/webhub/internal/app/system/formutil"
	"github.com/datasea-id/webhub/internal/app/system/inputval"
	"github.com/datasea-id/webhub/internal/app/system/listview"
	"github.com/datasea-id/webhub/internal/app/system/navigation"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/uploader"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const adminPageSize = 6

// memberFormInput defines validation rules shared by create and edit.
type memberFormInput struct {
	Name     string `validate:"required,max=120" label:"Nama"`
	Role     string `validate:"required,max=100" label:"Jabatan"`
	Division string `validate:"required" label:"Divisi"`
}

func listConfig() listview.Config[models.TeamMember] {
	return listview.Config[models.TeamMember]{
		PageSize: adminPageSize,
		SearchText: func(m models.TeamMember) []string {
			return []string{m.Name, m.Role}
		},
		FilterValue: func(m models.TeamMember) string { return m.Division },
	}
}

type listData struct {
	viewdata.BaseVM
	Page      listview.Page[models.TeamMember]
	Query     string
	Filter    string
	Divisions []string
}

type memberFormVM struct {
	formutil.Base
	IsEdit       bool
	MemberID     string
	Name         string
	Role         string
	Division     string
	PhotoURL     string
	LinkedinURL  string
	InstagramURL string
	Divisions    []string
}

// ServeAdminList handles GET /admin/tim.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := teamstore.New(h.DB).All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load team failed", err, "Unable to load team members.", "/admin")
		return
	}

	p := listview.ParseParams(r, listview.FilterAll)
	page := listConfig().Apply(members, p)

	data := listData{
		BaseVM:    viewdata.NewBaseVM(r, "Kelola Tim", "/admin"),
		Page:      page,
		Query:     p.Query,
		Filter:    p.Filter,
		Divisions: models.Divisions,
	}
	templates.Render(w, r, "team_admin", data)
}

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	vm := memberFormVM{
		Division:  models.DivisionBPH,
		Divisions: models.Divisions,
	}
	formutil.SetBase(&vm.Base, r, "Tambah Anggota", "/admin/tim")
	templates.Render(w, r, "team_form", vm)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploader.MaxImageBytes + 1<<20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/tim")
		return
	}

	in := readMemberForm(r)

	reRender := func(msg string) {
		vm := in.formVM(false, "")
		formutil.SetBase(&vm.Base, r, "Tambah Anggota", "/admin/tim")
		vm.SetError(msg)
		templates.Render(w, r, "team_form", vm)
	}

	if msg := in.validate(); msg != "" {
		reRender(msg)
		return
	}

	photoURL, err := h.uploadPhoto(r)
	if err != nil {
		h.Log.Error("photo upload failed", zap.Error(err))
		reRender("Failed to upload photo. Please try again.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	m := in.model()
	m.PhotoURL = photoURL
	if _, err := teamstore.New(h.DB).Create(ctx, m); err != nil {
		h.Log.Error("create team member failed", zap.Error(err))
		reRender("Database error while adding the member.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.TeamBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid member id", err, "Invalid member ID.", "/admin/tim")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	m, err := teamstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "team member not found", "Team member not found.", "/admin/tim")
		return
	}

	vm := memberFormVM{
		IsEdit:       true,
		MemberID:     m.ID.Hex(),
		Name:         m.Name,
		Role:         m.Role,
		Division:     m.Division,
		PhotoURL:     m.PhotoURL,
		LinkedinURL:  m.LinkedinURL,
		InstagramURL: m.InstagramURL,
		Divisions:    models.Divisions,
	}
	formutil.SetBase(&vm.Base, r, "Ubah Anggota", "/admin/tim")
	templates.Render(w, r, "team_form", vm)
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid member id", err, "Invalid member ID.", "/admin/tim")
		return
	}

	if err := r.ParseMultipartForm(uploader.MaxImageBytes + 1<<20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/tim")
		return
	}

	in := readMemberForm(r)

	reRender := func(msg string) {
		vm := in.formVM(true, oid.Hex())
		formutil.SetBase(&vm.Base, r, "Ubah Anggota", "/admin/tim")
		vm.SetError(msg)
		templates.Render(w, r, "team_form", vm)
	}

	if msg := in.validate(); msg != "" {
		reRender(msg)
		return
	}

	photoURL, err := h.uploadPhoto(r)
	if err != nil {
		h.Log.Error("photo upload failed", zap.Error(err))
		reRender("Failed to upload photo. Please try again.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	m := in.model()
	// Empty means keep the stored photo; the store skips the field.
	m.PhotoURL = photoURL
	if err := teamstore.New(h.DB).Update(ctx, oid, m); err != nil {
		h.Log.Error("update team member failed", zap.Error(err))
		reRender("Database error while updating the member.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.TeamBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// HandleDelete handles POST /admin/tim/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid member id", err, "Invalid member ID.", "/admin/tim")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := teamstore.New(h.DB).Delete(ctx, oid); err != nil {
		h.ErrLog.LogServerError(w, r, "delete team member failed", err, "Unable to delete the member.", "/admin/tim")
		return
	}
	h.Log.Info("team member deleted", zap.String("member_id", oid.Hex()))

	ret := navigation.SafeBackURL(r, navigation.TeamBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

type memberForm struct {
	Name         string
	Role         string
	Division     string
	LinkedinURL  string
	InstagramURL string
}

func readMemberForm(r *http.Request) memberForm {
	return memberForm{
		Name:         strings.TrimSpace(r.FormValue("nama")),
		Role:         strings.TrimSpace(r.FormValue("jabatan")),
		Division:     strings.TrimSpace(r.FormValue("divisi")),
		LinkedinURL:  strings.TrimSpace(r.FormValue("linkedin_url")),
		InstagramURL: strings.TrimSpace(r.FormValue("instagram_url")),
	}
}

func (f memberForm) validate() string {
	input := memberFormInput{Name: f.Name, Role: f.Role, Division: f.Division}
	if result := inputval.Validate(input); result.HasErrors() {
		return result.First()
	}
	if !validDivision(f.Division) {
		return "Divisi is invalid."
	}
	if f.LinkedinURL != "" && !urlutil.IsValidAbsHTTPURL(f.LinkedinURL) {
		return "LinkedIn URL must be a valid absolute URL."
	}
	if f.InstagramURL != "" && !urlutil.IsValidAbsHTTPURL(f.InstagramURL) {
		return "Instagram URL must be a valid absolute URL."
	}
	return ""
}

func validDivision(d string) bool {
	for _, v := range models.Divisions {
		if d == v {
			return true
		}
	}
	return false
}

func (f memberForm) formVM(isEdit bool, id string) memberFormVM {
	return memberFormVM{
		IsEdit:       isEdit,
		MemberID:     id,
		Name:         f.Name,
		Role:         f.Role,
		Division:     f.Division,
		LinkedinURL:  f.LinkedinURL,
		InstagramURL: f.InstagramURL,
		Divisions:    models.Divisions,
	}
}

func (f memberForm) model() models.TeamMember {
	return models.TeamMember{
		Name:         f.Name,
		Role:         f.Role,
		Division:     f.Division,
		LinkedinURL:  f.LinkedinURL,
		InstagramURL: f.InstagramURL,
	}
}

// uploadPhoto stores the submitted photo, if any, and returns its URL.
func (h *Handler) uploadPhoto(r *http.Request) (string, error) {
	file, header, err := r.FormFile("foto")
	if err != nil || header == nil || header.Size == 0 {
		return "", nil
	}
	defer file.Close()

	if header.Size > uploader.MaxImageBytes {
		return "", fmt.Errorf("photo too large: %d bytes", header.Size)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()
	return h.Uploader.Upload(ctx, header.Filename, file)
}
