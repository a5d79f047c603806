// internal/app/features/programs/admin.go
package programs

import (
	"context"
	"net/http"
	"strings"

	programstore "github.com/datasea-id/webhub/internal/app/store/programs"
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

// programFormInput defines validation rules shared by create and edit.
type programFormInput struct {
	Name     string `validate:"required,max=200" label:"Nama program"`
	Division string `validate:"max=100" label:"Divisi"`
	Status   string `validate:"required" label:"Status"`
	Kategori string `validate:"required" label:"Kategori"`
}

// ServeAdminList handles GET /admin/program-kerja.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := programstore.New(h.DB).All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load work programs failed", err, "Unable to load work programs.", "/admin")
		return
	}

	p := listview.ParseParams(r, listview.FilterAll)
	page := adminListConfig().Apply(all, p)

	data := adminListData{
		BaseVM:   viewdata.NewBaseVM(r, "Kelola Program Kerja", "/admin"),
		Page:     page,
		Query:    p.Query,
		Filter:   p.Filter,
		Statuses: models.ProgramStatuses,
	}
	templates.Render(w, r, "programs_admin", data)
}

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	vm := programFormVM{
		Status:    models.ProgramStatusRencana,
		Kategori:  models.ProgramKategoriBesar,
		Statuses:  models.ProgramStatuses,
		Kategoris: models.ProgramKategoris,
	}
	formutil.SetBase(&vm.Base, r, "Tambah Program Kerja", "/admin/program-kerja")
	templates.Render(w, r, "program_form", vm)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in := readProgramForm(r)

	reRender := func(msg string) {
		vm := in.formVM(false, "")
		formutil.SetBase(&vm.Base, r, "Tambah Program Kerja", "/admin/program-kerja")
		vm.SetError(msg)
		templates.Render(w, r, "program_form", vm)
	}

	if msg := in.validate(); msg != "" {
		reRender(msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := programstore.New(h.DB).Create(ctx, in.model()); err != nil {
		h.Log.Error("create work program failed", zap.Error(err))
		reRender("Database error while creating the work program.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.ProgramsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid program id", err, "Invalid program ID.", "/admin/program-kerja")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	prog, err := programstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "work program not found", "Work program not found.", "/admin/program-kerja")
		return
	}

	vm := programFormVM{
		IsEdit:      true,
		ProgramID:   prog.ID.Hex(),
		Name:        prog.Name,
		Description: prog.Description,
		Division:    prog.Division,
		Status:      prog.Status,
		Kategori:    prog.Kategori,
		Statuses:    models.ProgramStatuses,
		Kategoris:   models.ProgramKategoris,
	}
	formutil.SetBase(&vm.Base, r, "Ubah Program Kerja", "/admin/program-kerja")
	templates.Render(w, r, "program_form", vm)
}

// HandleEdit updates a program in place. Changing the kategori is the same
// single update as any other field change.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid program id", err, "Invalid program ID.", "/admin/program-kerja")
		return
	}

	in := readProgramForm(r)

	reRender := func(msg string) {
		vm := in.formVM(true, oid.Hex())
		formutil.SetBase(&vm.Base, r, "Ubah Program Kerja", "/admin/program-kerja")
		vm.SetError(msg)
		templates.Render(w, r, "program_form", vm)
	}

	if msg := in.validate(); msg != "" {
		reRender(msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := programstore.New(h.DB).Update(ctx, oid, in.model()); err != nil {
		h.Log.Error("update work program failed", zap.Error(err))
		reRender("Database error while updating the work program.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.ProgramsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// HandleDelete handles POST /admin/program-kerja/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid program id", err, "Invalid program ID.", "/admin/program-kerja")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := programstore.New(h.DB).Delete(ctx, oid); err != nil {
		h.ErrLog.LogServerError(w, r, "delete work program failed", err, "Unable to delete the work program.", "/admin/program-kerja")
		return
	}
	h.Log.Info("work program deleted", zap.String("program_id", oid.Hex()))

	ret := navigation.SafeBackURL(r, navigation.ProgramsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

type programForm struct {
	Name        string
	Description string
	Division    string
	Status      string
	Kategori    string
}

func readProgramForm(r *http.Request) programForm {
	return programForm{
		Name:        strings.TrimSpace(r.FormValue("nama_proker")),
		Description: htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("deskripsi"))),
		Division:    strings.TrimSpace(r.FormValue("divisi")),
		Status:      strings.TrimSpace(r.FormValue("status")),
		Kategori:    strings.TrimSpace(r.FormValue("kategori")),
	}
}

func (f programForm) validate() string {
	input := programFormInput{Name: f.Name, Division: f.Division, Status: f.Status, Kategori: f.Kategori}
	if result := inputval.Validate(input); result.HasErrors() {
		return result.First()
	}
	if !models.ValidProgramStatus(f.Status) {
		return "Status is invalid."
	}
	if !models.ValidProgramKategori(f.Kategori) {
		return "Kategori is invalid."
	}
	if f.Kategori == models.ProgramKategoriDivisi && f.Division == "" {
		return "Divisi is required for Divisi programs."
	}
	return ""
}

func (f programForm) formVM(isEdit bool, id string) programFormVM {
	return programFormVM{
		IsEdit:      isEdit,
		ProgramID:   id,
		Name:        f.Name,
		Description: f.Description,
		Division:    f.Division,
		Status:      f.Status,
		Kategori:    f.Kategori,
		Statuses:    models.ProgramStatuses,
		Kategoris:   models.ProgramKategoris,
	}
}

func (f programForm) model() models.WorkProgram {
	return models.WorkProgram{
		Name:        f.Name,
		Description: f.Description,
		Division:    f.Division,
		Status:      f.Status,
		Kategori:    f.Kategori,
	}
}
