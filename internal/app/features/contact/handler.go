// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	messagestore "github.com/datasea-id/webhub/internal/app/store/messages"
	"github.com/datasea-id/webhub/internal/app/system/botcheck"
	"github.com/datasea-id/webhub/internal/app/system/inputval"
	"github.com/datasea-id/webhub/internal/app/system/normalize"
	"github.com/datasea-id/webhub/internal/app/system/timeouts"
	"github.com/datasea-id/webhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/datasea-id/webhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// maxContactBody caps the JSON request body.
const maxContactBody = 64 << 10

// Handler serves the contact page and the JSON submission endpoint the page
// posts to.
type Handler struct {
	DB               *mongo.Database
	ErrLog           *uierrors.ErrorLogger
	Verifier         botcheck.Verifier
	TurnstileSiteKey string
	Log              *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, verifier botcheck.Verifier, siteKey string, logger *zap.Logger) *Handler {
	return &Handler{
		DB:               db,
		ErrLog:           errLog,
		Verifier:         verifier,
		TurnstileSiteKey: siteKey,
		Log:              logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	SiteKey string
}

// ServeContact handles GET /kontak.
func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Kontak", "/"),
		SiteKey: h.TurnstileSiteKey,
	}
	templates.Render(w, r, "contact", data)
}

// ServeThanks handles GET /kontak/terima-kasih, the page the contact form
// sends visitors to after a successful submission.
func (h *Handler) ServeThanks(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM: viewdata.NewBaseVM(r, "Terima Kasih", "/kontak"),
	}
	templates.Render(w, r, "contact_thanks", data)
}

// contactRequest is the JSON body for POST /api/contact.
type contactRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Instansi string `json:"instansi"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Token    string `json:"token"`
}

// contactInput defines validation rules for a contact submission. All six
// fields of the request body are required, the challenge token included.
type contactInput struct {
	Name     string `validate:"required,max=120" label:"Nama"`
	Phone    string `validate:"required,max=20" label:"Nomor telepon"`
	Instansi string `validate:"required,max=200" label:"Instansi"`
	Email    string `validate:"required,max=254" label:"Email"`
	Message  string `validate:"required,max=5000" label:"Pesan"`
	Token    string `validate:"required" label:"Token"`
}

// HandleSubmit handles POST /api/contact. Field validation runs before the
// bot check so a bad payload never burns a challenge token, and the bot
// check runs before the write.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid JSON body",
		})
		return
	}

	name := normalize.Name(req.Name)
	phone := strings.TrimSpace(req.Phone)
	instansi := strings.TrimSpace(req.Instansi)
	email := normalize.Email(req.Email)
	body := strings.TrimSpace(req.Message)
	token := strings.TrimSpace(req.Token)

	input := contactInput{
		Name:     name,
		Phone:    phone,
		Instansi: instansi,
		Email:    email,
		Message:  body,
		Token:    token,
	}
	if result := inputval.Validate(input); result.HasErrors() {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   result.First(),
		})
		return
	}
	if !inputval.IsValidEmail(email) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Email is invalid.",
		})
		return
	}

	vctx, vcancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer vcancel()
	if err := h.Verifier.Verify(vctx, token, clientIP(r)); err != nil {
		if errors.Is(err, botcheck.ErrVerifyFailed) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"error":   "verification failed",
			})
			return
		}
		h.Log.Error("bot check transport failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "verification unavailable",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msg := models.Message{
		Name:     name,
		Phone:    phone,
		Instansi: instansi,
		Email:    email,
		Body:     body,
	}
	created, err := messagestore.New(h.DB).Create(ctx, msg)
	if err != nil {
		h.Log.Error("create message failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "failed to save message",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"id":      created.ID.Hex(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func clientIP(r *http.Request) string {
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	return host
}
