package logout_test

import (
	"testing"
	"time"

	"github.com/datasea-id/webhub/internal/app/features/logout"
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.uber.org/zap"
)

func TestServeLogout_ClearsSessionAndRedirectsHome(t *testing.T) {
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "webhub_test", "", 10*time.Minute, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	h := logout.NewHandler(sm, zap.NewNop())

	req := testutil.NewAuthenticatedRequest("GET", "/logout", testutil.AdminUser())
	rec := testutil.NewRecorder()
	h.ServeLogout(rec, req)

	rec.AssertRedirect(t, "/")
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a deletion cookie")
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("cookie MaxAge = %d, want negative to delete", cookies[0].MaxAge)
	}
}

func TestServeLogout_AnonymousIsNoOp(t *testing.T) {
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "webhub_test", "", 10*time.Minute, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	h := logout.NewHandler(sm, zap.NewNop())

	req := testutil.NewRequest("GET", "/logout")
	rec := testutil.NewRecorder()
	h.ServeLogout(rec, req)

	rec.AssertRedirect(t, "/")
}
