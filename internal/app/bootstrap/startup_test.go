package bootstrap

import (
	"testing"

	"github.com/datasea-id/webhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestEnsureBootstrapAdmin_CreatesFirstAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	if err := ensureBootstrapAdmin(ctx, deps, "admin@datasea.id", "rahasia-kuat", testLogger()); err != nil {
		t.Fatalf("ensureBootstrapAdmin: %v", err)
	}

	var user struct {
		Email        string `bson:"email"`
		Role         string `bson:"role"`
		PasswordHash string `bson:"password_hash"`
	}
	if err := db.Collection("users").FindOne(ctx, bson.M{"email": "admin@datasea.id"}).Decode(&user); err != nil {
		t.Fatalf("find created user: %v", err)
	}
	if user.Role != "admin" {
		t.Errorf("role = %q, want admin", user.Role)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("rahasia-kuat")) != nil {
		t.Error("stored hash does not match the configured password")
	}
}

func TestEnsureBootstrapAdmin_SkipsWhenAccountsExist(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAdmin(ctx, "Rina", "rina@datasea.id", "some-hash")

	deps := DBDeps{MongoDatabase: db}
	if err := ensureBootstrapAdmin(ctx, deps, "admin@datasea.id", "rahasia-kuat", testLogger()); err != nil {
		t.Fatalf("ensureBootstrapAdmin: %v", err)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 1 {
		t.Errorf("user count = %d, want 1 (no new account)", n)
	}
}

func TestEnsureBootstrapAdmin_SkipsWithoutPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}
	if err := ensureBootstrapAdmin(ctx, deps, "admin@datasea.id", "", testLogger()); err != nil {
		t.Fatalf("ensureBootstrapAdmin: %v", err)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if n != 0 {
		t.Errorf("user count = %d, want 0", n)
	}
}
