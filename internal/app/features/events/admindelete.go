// internal/app/features/events/admindelete.go
package events

import (
	"context"
	"net/http"

	eventstore "github.com/datasea-id/webhub/internal/app/store/events"
	"github.com/datasea-id/webhub/internal/app/system/navigation"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type deleteConfirmData struct {
	viewdata.BaseVM
	EventID   string
	EventName string
}

// ServeDeleteConfirm handles GET /admin/acara/{id}/delete, the confirmation
// page shown before the actual deletion.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
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

	data := deleteConfirmData{
		BaseVM:    viewdata.NewBaseVM(r, "Hapus Acara", "/admin/acara"),
		EventID:   ev.ID.Hex(),
		EventName: ev.Name,
	}
	templates.Render(w, r, "event_delete", data)
}

// HandleDelete handles POST /admin/acara/{id}/delete. Deleting an already
// deleted event just redirects back to the list.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid event id", err, "Invalid event ID.", "/admin/acara")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := eventstore.New(h.DB).Delete(ctx, oid); err != nil {
		h.ErrLog.LogServerError(w, r, "delete event failed", err, "Unable to delete the event.", "/admin/acara")
		return
	}
	h.Log.Info("event deleted", zap.String("event_id", oid.Hex()))

	ret := navigation.SafeBackURL(r, navigation.EventsBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
