package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/datasea-id/webhub/internal/app/features/contact"
	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	messagestore "github.com/datasea-id/webhub/internal/app/store/messages"
	"github.com/datasea-id/webhub/internal/app/system/botcheck"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(db *mongo.Database, verifier botcheck.Verifier) *contact.Handler {
	if verifier == nil {
		verifier = botcheck.AlwaysPass{}
	}
	return contact.NewHandler(db, uierrors.NewErrorLogger(zap.NewNop()), verifier, "test-site-key", zap.NewNop())
}

func postJSON(t *testing.T, h *contact.Handler, body string) *testutil.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := testutil.NewRecorder()
	h.HandleSubmit(rec.ResponseRecorder, req)
	return rec
}

func decode(t *testing.T, rec *testutil.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return out
}

func TestHandleSubmit_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := newHandler(db, nil)

	rec := postJSON(t, h, `{
		"name": "Rina Putri",
		"phone": "081234567890",
		"instansi": "Universitas Indonesia",
		"email": "RINA@Example.com",
		"message": "Halo, saya ingin berkolaborasi.",
		"token": "tok"
	}`)

	rec.AssertStatus(t, http.StatusOK)
	out := decode(t, rec)
	if out["success"] != true {
		t.Fatalf("expected success, got %v", out)
	}
	if id, _ := out["id"].(string); id == "" {
		t.Error("response should carry the new message id")
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	msgs, err := messagestore.New(db).All(ctx)
	if err != nil {
		t.Fatalf("load messages: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Status != models.MessageStatusBaru {
		t.Errorf("new messages must start as Baru, got %q", msgs[0].Status)
	}
	if msgs[0].Email != "rina@example.com" {
		t.Errorf("email should be normalized, got %q", msgs[0].Email)
	}
}

func TestHandleSubmit_MissingField_BeforeVerify(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "no name",
			body:    `{"phone": "081234567890", "instansi": "UI", "email": "rina@example.com", "message": "Halo.", "token": "tok"}`,
			wantErr: "Nama is required.",
		},
		{
			name:    "no phone",
			body:    `{"name": "Rina Putri", "instansi": "UI", "email": "rina@example.com", "message": "Halo.", "token": "tok"}`,
			wantErr: "Nomor telepon is required.",
		},
		{
			name:    "no instansi",
			body:    `{"name": "Rina Putri", "phone": "081234567890", "email": "rina@example.com", "message": "Halo.", "token": "tok"}`,
			wantErr: "Instansi is required.",
		},
		{
			name:    "no email",
			body:    `{"name": "Rina Putri", "phone": "081234567890", "instansi": "UI", "message": "Halo.", "token": "tok"}`,
			wantErr: "Email is required.",
		},
		{
			name:    "no message",
			body:    `{"name": "Rina Putri", "phone": "081234567890", "instansi": "UI", "email": "rina@example.com", "token": "tok"}`,
			wantErr: "Pesan is required.",
		},
		{
			name:    "no token",
			body:    `{"name": "Rina Putri", "phone": "081234567890", "instansi": "UI", "email": "rina@example.com", "message": "Halo."}`,
			wantErr: "Token is required.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)

			// A verifier that fails the test if it is ever called.
			h := newHandler(db, verifierFunc(func() error {
				t.Error("bot check must not run when fields are missing")
				return nil
			}))

			rec := postJSON(t, h, tc.body)

			rec.AssertStatus(t, http.StatusBadRequest)
			out := decode(t, rec)
			if out["success"] != false || out["error"] != tc.wantErr {
				t.Errorf("unexpected response: %v", out)
			}

			ctx, cancel := testutil.TestContext()
			defer cancel()
			n, err := messagestore.New(db).Count(ctx, bson.M{})
			if err != nil {
				t.Fatalf("count: %v", err)
			}
			if n != 0 {
				t.Errorf("rejected submission must not write a message, got %d", n)
			}
		})
	}
}

func TestHandleSubmit_VerifyFails(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := newHandler(db, verifierFunc(func() error {
		return botcheck.ErrVerifyFailed
	}))

	rec := postJSON(t, h, `{
		"name": "Rina Putri",
		"phone": "081234567890",
		"instansi": "UI",
		"email": "rina@example.com",
		"message": "Halo.",
		"token": "bad-token"
	}`)

	rec.AssertStatus(t, http.StatusBadRequest)
	out := decode(t, rec)
	if out["success"] != false || out["error"] != "verification failed" {
		t.Errorf("unexpected response: %v", out)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	n, err := messagestore.New(db).Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("failed verification must not write a message, got %d", n)
	}
}

func TestHandleSubmit_InvalidJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := newHandler(db, nil)

	rec := postJSON(t, h, `{not json`)

	rec.AssertStatus(t, http.StatusBadRequest)
	out := decode(t, rec)
	if out["success"] != false {
		t.Errorf("unexpected response: %v", out)
	}
}

func TestServeThanks(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := newHandler(db, nil)

	req := testutil.NewRequest(http.MethodGet, "/kontak/terima-kasih")
	rec := testutil.NewRecorder()
	h.ServeThanks(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Terima Kasih")
}

// verifierFunc adapts a func to botcheck.Verifier.
type verifierFunc func() error

func (f verifierFunc) Verify(_ context.Context, _, _ string) error { return f() }
