package messages_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	"github.com/datasea-id/webhub/internal/app/features/messages"
	messagestore "github.com/datasea-id/webhub/internal/app/store/messages"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(db *mongo.Database) *messages.Handler {
	return messages.NewHandler(db, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
}

func TestServeList_StatusFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateMessage(ctx, "Rina", "Halo!", models.MessageStatusBaru)
	f.CreateMessage(ctx, "Bima", "Terima kasih.", models.MessageStatusSelesai)

	h := newHandler(db)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/admin/pesan?filter=Baru", testutil.AdminUser())
	rec := testutil.NewRecorder()
	h.ServeList(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Rina")
	if strings.Contains(rec.Body.String(), "Bima") {
		t.Error("status filter should hide other statuses")
	}
}

func TestServeList_EmptyFilteredResult_OffersReset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateMessage(ctx, "Rina", "Halo!", models.MessageStatusBaru)

	h := newHandler(db)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/admin/pesan?filter=Selesai", testutil.AdminUser())
	rec := testutil.NewRecorder()
	h.ServeList(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Tidak ada pesan")
	rec.AssertContains(t, `<a href="/admin/pesan">Tampilkan semua pesan</a>`)
}

func TestServeDetail_MarksBaruAsDibacaOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	msg := f.CreateMessage(ctx, "Rina", "Halo!", models.MessageStatusBaru)

	h := newHandler(db)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/admin/pesan/"+msg.ID.Hex(), testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", msg.ID.Hex())
	rec := testutil.NewRecorder()
	h.ServeDetail(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Dibaca")

	got, err := messagestore.New(db).GetByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("reload message: %v", err)
	}
	if got.Status != models.MessageStatusDibaca {
		t.Errorf("opening a Baru message should mark it Dibaca, got %q", got.Status)
	}
}

func TestServeDetail_DoesNotDemoteSelesai(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	msg := f.CreateMessage(ctx, "Bima", "Terima kasih.", models.MessageStatusSelesai)

	h := newHandler(db)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/admin/pesan/"+msg.ID.Hex(), testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", msg.ID.Hex())
	rec := testutil.NewRecorder()
	h.ServeDetail(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	got, err := messagestore.New(db).GetByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("reload message: %v", err)
	}
	if got.Status != models.MessageStatusSelesai {
		t.Errorf("opening a Selesai message must not change it, got %q", got.Status)
	}
}

func TestHandleSetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	msg := f.CreateMessage(ctx, "Rina", "Halo!", models.MessageStatusDibaca)

	h := newHandler(db)

	form := url.Values{"status": {models.MessageStatusSelesai}}
	req := testutil.NewFormRequest("/admin/pesan/"+msg.ID.Hex()+"/status", form.Encode())
	req = testutil.WithChiURLParam(req, "id", msg.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleSetStatus(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/pesan")

	got, err := messagestore.New(db).GetByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("reload message: %v", err)
	}
	if got.Status != models.MessageStatusSelesai {
		t.Errorf("status = %q, want Selesai", got.Status)
	}
}

func TestHandleSetStatus_InvalidValue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	msg := f.CreateMessage(ctx, "Rina", "Halo!", models.MessageStatusBaru)

	h := newHandler(db)

	form := url.Values{"status": {"Archived"}}
	req := testutil.NewFormRequest("/admin/pesan/"+msg.ID.Hex()+"/status", form.Encode())
	req = testutil.WithChiURLParam(req, "id", msg.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleSetStatus(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	msg := f.CreateMessage(ctx, "Rina", "Halo!", models.MessageStatusSelesai)

	h := newHandler(db)

	req := testutil.NewFormRequest("/admin/pesan/"+msg.ID.Hex()+"/delete", "")
	req = testutil.WithChiURLParam(req, "id", msg.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/pesan")

	n, err := messagestore.New(db).Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 messages after delete, got %d", n)
	}
}
