// internal/app/features/messages/handler.go
package messages

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	messagestore "github.com/datasea-id/webhub/internal/app/store/messages"
	"github.com/datasea-id/webhub/internal/app/system/listview"
	"github.com/datasea-id/webhub/internal/app/system/navigation"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const adminPageSize = 10

// Handler serves the admin contact-message inbox.
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

func listConfig() listview.Config[models.Message] {
	return listview.Config[models.Message]{
		PageSize: adminPageSize,
		SearchText: func(m models.Message) []string {
			return []string{m.Name, m.Email, m.Instansi}
		},
		FilterValue: func(m models.Message) string { return m.Status },
	}
}

type listData struct {
	viewdata.BaseVM
	Page     listview.Page[models.Message]
	Query    string
	Filter   string
	Statuses []string
	NewCount int64
}

type detailData struct {
	viewdata.BaseVM
	Message  models.Message
	Statuses []string
}

// ServeList handles GET /admin/pesan, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := messagestore.New(h.DB)
	all, err := store.All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load messages failed", err, "Unable to load messages.", "/admin")
		return
	}

	newCount, err := store.CountNew(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count new messages failed", err, "Unable to load messages.", "/admin")
		return
	}

	p := listview.ParseParams(r, listview.FilterAll)
	page := listConfig().Apply(all, p)

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Pesan Masuk", "/admin"),
		Page:     page,
		Query:    p.Query,
		Filter:   p.Filter,
		Statuses: models.MessageStatuses,
		NewCount: newCount,
	}
	templates.Render(w, r, "messages_admin", data)
}

// ServeDetail handles GET /admin/pesan/{id}. Opening a Baru message marks it
// Dibaca exactly once; Selesai messages are never demoted.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid message id", err, "Invalid message ID.", "/admin/pesan")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := messagestore.New(h.DB)
	if _, err := store.MarkReadIfNew(ctx, oid); err != nil {
		h.ErrLog.LogServerError(w, r, "mark message read failed", err, "Unable to load the message.", "/admin/pesan")
		return
	}

	msg, err := store.GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "message not found", "Message not found.", "/admin/pesan")
		return
	}

	data := detailData{
		BaseVM:   viewdata.NewBaseVM(r, "Pesan dari "+msg.Name, "/admin/pesan"),
		Message:  msg,
		Statuses: models.MessageStatuses,
	}
	templates.Render(w, r, "message_detail", data)
}

// HandleSetStatus handles POST /admin/pesan/{id}/status.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid message id", err, "Invalid message ID.", "/admin/pesan")
		return
	}

	status := strings.TrimSpace(r.FormValue("status"))
	if !models.ValidMessageStatus(status) {
		h.ErrLog.LogBadRequest(w, r, "invalid message status", nil, "Invalid status.", "/admin/pesan")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	matched, err := messagestore.New(h.DB).SetStatus(ctx, oid, status)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "set message status failed", err, "Unable to update the message.", "/admin/pesan")
		return
	}
	if !matched {
		h.ErrLog.LogNotFound(w, r, "message not found", "Message not found.", "/admin/pesan")
		return
	}

	ret := navigation.SafeBackURL(r, navigation.MessagesBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// HandleDelete handles POST /admin/pesan/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid message id", err, "Invalid message ID.", "/admin/pesan")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := messagestore.New(h.DB).Delete(ctx, oid); err != nil {
		h.ErrLog.LogServerError(w, r, "delete message failed", err, "Unable to delete the message.", "/admin/pesan")
		return
	}
	h.Log.Info("message deleted", zap.String("message_id", oid.Hex()))

	ret := navigation.SafeBackURL(r, navigation.MessagesBackURL)
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
