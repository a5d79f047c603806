package dcenter_test

import (
	"net/http"
	"testing"

	"github.com/datasea-id/webhub/internal/app/features/dcenter"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.uber.org/zap"
)

func TestServePage(t *testing.T) {
	h := dcenter.NewHandler(zap.NewNop())

	req := testutil.NewRequest(http.MethodGet, "/d-center")
	rec := testutil.NewRecorder()
	h.ServePage(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "D-Center Ecosystem")
	rec.AssertContains(t, "Datasea Archive")
	rec.AssertContains(t, "Web Development Service")
}
