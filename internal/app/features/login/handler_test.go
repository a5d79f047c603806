package login_test

import (
	"net/url"
	"testing"
	"time"

	uierrors "github.com/datasea-id/webhub/internal/app/features/errors"
	"github.com/datasea-id/webhub/internal/app/features/login"
	"github.com/datasea-id/webhub/internal/app/system/auth"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestHandler(t *testing.T) (*login.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "webhub_test", "", 10*time.Minute, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	h := login.NewHandler(db, uierrors.NewErrorLogger(zap.NewNop()), sm, false, zap.NewNop())
	return h, testutil.NewFixtures(t, db)
}

func loginForm(email, password string) string {
	v := url.Values{}
	v.Set("email", email)
	v.Set("password", password)
	return v.Encode()
}

func TestHandleLogin_Success(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-kuat"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	fx.CreateAdmin(ctx, "Rina", "rina@datasea.id", string(hash))

	req := testutil.NewFormRequest("/login", loginForm("rina@datasea.id", "rahasia-kuat"))
	rec := testutil.NewRecorder()
	h.HandleLogin(rec, req)

	rec.AssertRedirect(t, "/admin")
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie to be set")
	}
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, _ := bcrypt.GenerateFromPassword([]byte("rahasia-kuat"), bcrypt.MinCost)
	fx.CreateAdmin(ctx, "Rina", "rina@datasea.id", string(hash))

	req := testutil.NewFormRequest("/login", loginForm("rina@datasea.id", "salah"))
	rec := testutil.NewRecorder()
	h.HandleLogin(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "Email atau kata sandi salah.")
}

func TestHandleLogin_UnknownEmail_SameMessage(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewFormRequest("/login", loginForm("tidakada@datasea.id", "apa-saja"))
	rec := testutil.NewRecorder()
	h.HandleLogin(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "Email atau kata sandi salah.")
}

func TestHandleLogin_GoogleOnlyAccount_Fails(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// No password hash: this account can only sign in through Google.
	fx.CreateAdmin(ctx, "Budi", "budi@datasea.id", "")

	req := testutil.NewFormRequest("/login", loginForm("budi@datasea.id", "apa-saja"))
	rec := testutil.NewRecorder()
	h.HandleLogin(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "Email atau kata sandi salah.")
}

func TestHandleLogin_RateLimited(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-kuat"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	fx.CreateAdmin(ctx, "Rina", "rina@datasea.id", string(hash))

	// The per-email budget is 5 attempts; the sixth is refused before any
	// credential check, even with the right password.
	for i := 0; i < 5; i++ {
		req := testutil.NewFormRequest("/login", loginForm("rina@datasea.id", "salah"))
		rec := testutil.NewRecorder()
		h.HandleLogin(rec, req)
		rec.AssertStatus(t, 200)
	}

	req := testutil.NewFormRequest("/login", loginForm("rina@datasea.id", "rahasia-kuat"))
	rec := testutil.NewRecorder()
	h.HandleLogin(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "Terlalu banyak percobaan")
}

func TestServeForm_ShowsExpiredNotice(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequest("GET", "/login?expired=1")
	rec := testutil.NewRecorder()
	h.ServeForm(rec, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "Sesi Anda telah berakhir.")
}
