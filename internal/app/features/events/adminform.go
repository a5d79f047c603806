// internal/app/features/events/adminform.go
package events

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	eventstore "github.com/datasea-id/webhub/internal/app/store/events"
	"github.com/datasea-id/webhub/internal/app/system/formutil"
	"github.com/datasea-id/webhub/internal/app/system/htmlsanitize"
	"github.com/datasea-id/webhub/internal/app/system/inputval"
	"github.com/datasea-id/webhub/internal/app/system/navigation"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/uploader"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// eventFormInput defines validation rules shared by create and edit.
type eventFormInput struct {
	Name   string `validate:"required,max=200" label:"Nama acara"`
	Date   string `validate:"required,datetime=2006-01-02" label:"Tanggal"`
	Status string `validate:"required" label:"Status"`
}

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	vm := eventFormVM{
		Status:   models.EventStatusSegera,
		Statuses: models.EventStatuses,
	}
	formutil.SetBase(&vm.Base, r, "Tambah Acara", "/admin/acara")
	templates.Render(w, r, "event_form", vm)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Multipart because of the optional poster. Cap a little above the
	// poster limit so oversized files fail with a clear message instead
	// of a truncated form.
	if err := r.ParseMultipartForm(uploader.MaxImageBytes + 1<<20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/acara")
		return
	}

	in := readEventForm(r)

	reRender := func(msg string) {
		vm := in.formVM(false, "")
		formutil.SetBase(&vm.Base, r, "Tambah Acara", "/admin/acara")
		vm.SetError(msg)
		templates.Render(w, r, "event_form", vm)
	}

	if msg := in.validate(); msg != "" {
		reRender(msg)
		return
	}

	posterURL, err := h.uploadPoster(r)
	if err != nil {
		h.Log.Error("poster upload failed", zap.Error(err))
		reRender("Failed to upload poster. Please try again.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ev := in.model()
	ev.PosterURL = posterURL
	if _, err := eventstore.New(h.DB).Create(ctx, ev); err != nil {
		h.Log.Error("create event failed", zap.Error(err))
		reRender("Database error while creating the event.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.EventsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid event id", err, "Invalid event ID.", "/admin/acara")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ev, err := eventstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "event not found", "Event not found.", "/admin/acara")
		return
	}

	vm := eventFormVM{
		IsEdit:           true,
		EventID:          ev.ID.Hex(),
		Name:             ev.Name,
		Description:      ev.Description,
		Date:             ev.Date,
		Time:             ev.Time,
		Location:         ev.Location,
		Organizer:        ev.Organizer,
		RegistrationLink: ev.RegistrationLink,
		PosterURL:        ev.PosterURL,
		Status:           ev.Status,
		Statuses:         models.EventStatuses,
	}
	formutil.SetBase(&vm.Base, r, "Ubah Acara", "/admin/acara")
	templates.Render(w, r, "event_form", vm)
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid event id", err, "Invalid event ID.", "/admin/acara")
		return
	}

	if err := r.ParseMultipartForm(uploader.MaxImageBytes + 1<<20); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/admin/acara")
		return
	}

	in := readEventForm(r)

	reRender := func(msg string) {
		vm := in.formVM(true, oid.Hex())
		formutil.SetBase(&vm.Base, r, "Ubah Acara", "/admin/acara")
		vm.SetError(msg)
		templates.Render(w, r, "event_form", vm)
	}

	if msg := in.validate(); msg != "" {
		reRender(msg)
		return
	}

	posterURL, err := h.uploadPoster(r)
	if err != nil {
		h.Log.Error("poster upload failed", zap.Error(err))
		reRender("Failed to upload poster. Please try again.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ev := in.model()
	// Empty means keep the stored poster; the store skips the field.
	ev.PosterURL = posterURL
	if err := eventstore.New(h.DB).Update(ctx, oid, ev); err != nil {
		h.Log.Error("update event failed", zap.Error(err))
		reRender("Database error while updating the event.")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.EventsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// eventForm holds the trimmed submitted values.
type eventForm struct {
	Name             string
	Description      string
	Date             string
	Time             string
	Location         string
	Organizer        string
	RegistrationLink string
	Status           string
}

func readEventForm(r *http.Request) eventForm {
	return eventForm{
		Name:             strings.TrimSpace(r.FormValue("nama_acara")),
		Description:      htmlsanitize.Sanitize(strings.TrimSpace(r.FormValue("deskripsi_acara"))),
		Date:             strings.TrimSpace(r.FormValue("tanggal_acara")),
		Time:             strings.TrimSpace(r.FormValue("waktu_acara")),
		Location:         strings.TrimSpace(r.FormValue("lokasi")),
		Organizer:        strings.TrimSpace(r.FormValue("penyelenggara")),
		RegistrationLink: strings.TrimSpace(r.FormValue("link_pendaftaran")),
		Status:           strings.TrimSpace(r.FormValue("status_acara")),
	}
}

func (f eventForm) validate() string {
	input := eventFormInput{Name: f.Name, Date: f.Date, Status: f.Status}
	if result := inputval.Validate(input); result.HasErrors() {
		return result.First()
	}
	if !models.ValidEventStatus(f.Status) {
		return "Status is invalid."
	}
	if f.RegistrationLink != "" && !urlutil.IsValidAbsHTTPURL(f.RegistrationLink) {
		return "Link pendaftaran must be a valid absolute URL (e.g., https://example.com)."
	}
	return ""
}

func (f eventForm) formVM(isEdit bool, id string) eventFormVM {
	return eventFormVM{
		IsEdit:           isEdit,
		EventID:          id,
		Name:             f.Name,
		Description:      f.Description,
		Date:             f.Date,
		Time:             f.Time,
		Location:         f.Location,
		Organizer:        f.Organizer,
		RegistrationLink: f.RegistrationLink,
		Status:           f.Status,
		Statuses:         models.EventStatuses,
	}
}

func (f eventForm) model() models.Event {
	return models.Event{
		Name:             f.Name,
		Description:      f.Description,
		Date:             f.Date,
		Time:             f.Time,
		Location:         f.Location,
		Organizer:        f.Organizer,
		RegistrationLink: f.RegistrationLink,
		Status:           f.Status,
	}
}

// uploadPoster stores the submitted poster, if any, and returns its URL.
// A missing file is not an error; the caller keeps the stored URL.
func (h *Handler) uploadPoster(r *http.Request) (string, error) {
	file, header, err := r.FormFile("poster")
	if err != nil || header == nil || header.Size == 0 {
		return "", nil
	}
	defer file.Close()

	if header.Size > uploader.MaxImageBytes {
		return "", fmt.Errorf("poster too large: %d bytes", header.Size)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()
	return h.Uploader.Upload(ctx, header.Filename, file)
}
