package volunteers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	"github.com/datasea-id/webhub/internal/app/features/volunteers"
	applicantstore "github.com/datasea-id/webhub/internal/app/store/applicants"
	positionstore "github.com/datasea-id/webhub/internal/app/store/positions"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(db *mongo.Database) *volunteers.Handler {
	return volunteers.NewHandler(db, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
}

func applyForm() url.Values {
	return url.Values{
		"name":     {"Rina Putri"},
		"email":    {"rina@example.com"},
		"whatsapp": {"081234567890"},
		"reason":   {"Ingin belajar dan berkontribusi."},
	}
}

func TestServeList_OnlyOpenPositions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreatePosition(ctx, "Data Analyst", "IT", true)
	f.CreatePosition(ctx, "Posisi Lama", "HR", false)

	h := newHandler(db)

	req := testutil.NewRequest(http.MethodGet, "/relawan")
	rec := testutil.NewRecorder()
	h.ServeList(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Data Analyst")
	if strings.Contains(rec.Body.String(), "Posisi Lama") {
		t.Error("closed positions should not be listed")
	}
}

func TestHandleApply_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pos := f.CreatePosition(ctx, "Data Analyst", "IT", true)

	h := newHandler(db)

	req := testutil.NewFormRequest("/relawan/"+pos.ID.Hex()+"/apply", applyForm().Encode())
	req = testutil.WithChiURLParam(req, "id", pos.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleApply(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/relawan/"+pos.ID.Hex()+"?applied=1")

	apps, err := applicantstore.New(db).ByJobID(ctx, pos.ID.Hex())
	if err != nil {
		t.Fatalf("load applicants: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 applicant, got %d", len(apps))
	}
	if apps[0].JobTitle != "Data Analyst" || apps[0].Email != "rina@example.com" {
		t.Errorf("unexpected applicant: %+v", apps[0])
	}
}

func TestHandleApply_ClosedPosition_Redirects(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pos := f.CreatePosition(ctx, "Posisi Lama", "HR", false)

	h := newHandler(db)

	req := testutil.NewFormRequest("/relawan/"+pos.ID.Hex()+"/apply", applyForm().Encode())
	req = testutil.WithChiURLParam(req, "id", pos.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleApply(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/relawan")

	n, err := applicantstore.New(db).Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("closed positions must not accept applications, got %d", n)
	}
}

func TestHandleApply_MissingField(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pos := f.CreatePosition(ctx, "Data Analyst", "IT", true)

	form := applyForm()
	form.Del("reason")

	h := newHandler(db)

	req := testutil.NewFormRequest("/relawan/"+pos.ID.Hex()+"/apply", form.Encode())
	req = testutil.WithChiURLParam(req, "id", pos.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleApply(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Alasan is required.")
}

func TestHandleToggle_FlipsOpenState(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pos := f.CreatePosition(ctx, "Data Analyst", "IT", true)

	h := newHandler(db)

	req := testutil.NewFormRequest("/admin/relawan/"+pos.ID.Hex()+"/toggle", "")
	req = testutil.WithChiURLParam(req, "id", pos.ID.Hex())
	rec := testutil.NewRecorder()
	h.HandleToggle(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/relawan")

	got, err := positionstore.New(db).GetByID(ctx, pos.ID)
	if err != nil {
		t.Fatalf("reload position: %v", err)
	}
	if got.IsOpen {
		t.Error("toggle should have closed the position")
	}
}

func TestHandleCreate_StartsOpen(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := newHandler(db)

	form := url.Values{
		"title":        {"Volunteer Writer"},
		"division":     {"Media Kreatif"},
		"type":         {"Remote"},
		"requirements": {"Suka menulis.\n\nPaham dasar data."},
	}
	req := testutil.NewFormRequest("/admin/relawan", form.Encode())
	rec := testutil.NewRecorder()
	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertRedirect(t, "/admin/relawan")

	ctx, cancel := testutil.TestContext()
	defer cancel()
	got, err := positionstore.New(db).FindOpen(ctx)
	if err != nil {
		t.Fatalf("load open positions: %v", err)
	}
	if len(got) != 1 || !got[0].IsOpen {
		t.Fatalf("new positions must start open: %+v", got)
	}
	if len(got[0].Requirements) != 2 {
		t.Errorf("blank requirement lines should be dropped, got %v", got[0].Requirements)
	}
}
