package sitemap_test

import (
	"strings"
	"testing"

	"github.com/datasea-id/webhub/internal/app/features/sitemap"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.uber.org/zap"
)

func TestServeSitemap_StaticAndOpenPositions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	open := fx.CreatePosition(ctx, "Desainer Grafis", "Media Kreatif", true)
	closed := fx.CreatePosition(ctx, "Admin Media Sosial", "Public Relation", false)

	h := sitemap.NewHandler(db, "https://datasea.id/", zap.NewNop())

	req := testutil.NewRequest("GET", "/sitemap.xml")
	rec := testutil.NewRecorder()
	h.ServeSitemap(rec, req)

	rec.AssertStatus(t, 200)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("Content-Type = %q", ct)
	}
	rec.AssertContains(t, "<loc>https://datasea.id/tentang</loc>")
	rec.AssertContains(t, "<loc>https://datasea.id/relawan/"+open.ID.Hex()+"</loc>")
	if strings.Contains(rec.Body.String(), closed.ID.Hex()) {
		t.Error("sitemap lists a closed position")
	}
}

func TestServeRobots(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := sitemap.NewHandler(db, "https://datasea.id", zap.NewNop())

	req := testutil.NewRequest("GET", "/robots.txt")
	rec := testutil.NewRecorder()
	h.ServeRobots(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "Disallow: /admin/")
	rec.AssertContains(t, "Sitemap: https://datasea.id/sitemap.xml")
}
