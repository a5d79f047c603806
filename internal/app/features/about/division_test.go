package about_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/datasea-id/webhub/internal/app/features/about"
	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.uber.org/zap"
)

func TestServeDivision_ShowsProfileAndMembers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	f.CreateTeamMember(ctx, "Fajar", "Kepala Divisi", "IT")
	f.CreateTeamMember(ctx, "Gita", "Staff", "IT")
	f.CreateTeamMember(ctx, "Hana", "Staff", "HR")

	h := about.NewHandler(db, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())

	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/tentang/it"), "slug", "it")
	rec := testutil.NewRecorder()
	h.ServeDivision(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Teknologi &amp; Informasi")
	rec.AssertContains(t, "Tugas &amp; Tanggung Jawab")
	rec.AssertContains(t, "Fajar")
	rec.AssertContains(t, "Gita")
	if strings.Contains(rec.Body.String(), "Hana") {
		t.Error("a division page should only list its own members")
	}
}

func TestServeDivision_LeadsBeforeStaff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	f := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Alphabetical order would put the staff member first.
	f.CreateTeamMember(ctx, "Andi", "Staff", "IT")
	f.CreateTeamMember(ctx, "Zaki", "Koordinator", "IT")

	h := about.NewHandler(db, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())

	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/tentang/it"), "slug", "it")
	rec := testutil.NewRecorder()
	h.ServeDivision(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	body := rec.Body.String()
	if strings.Index(body, "Zaki") > strings.Index(body, "Andi") {
		t.Error("division leads should come before staff")
	}
}

func TestServeDivision_NoMembers(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := about.NewHandler(db, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())

	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/tentang/bph"), "slug", "bph")
	rec := testutil.NewRecorder()
	h.ServeDivision(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Badan Pengurus Harian")
	rec.AssertContains(t, "Data anggota BPH belum tersedia.")
}

func TestServeDivision_UnknownSlug(t *testing.T) {
	db := testutil.SetupTestDB(t)

	h := about.NewHandler(db, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())

	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/tentang/keuangan"), "slug", "keuangan")
	rec := testutil.NewRecorder()
	h.ServeDivision(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusNotFound)
}
