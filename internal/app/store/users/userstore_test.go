package userstore_test

import (
	"testing"

	userstore "github.com/datasea-id/webhub/internal/app/store/users"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Name:         "  Admin Datasea  ",
		Email:        "Admin@Datasea.Or.Id",
		PasswordHash: "$2a$10$fakehash",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Admin Datasea" {
		t.Errorf("Name: got %q", created.Name)
	}
	if created.Email != "admin@datasea.or.id" {
		t.Errorf("Email: got %q", created.Email)
	}
	if created.EmailCI != "admin@datasea.or.id" {
		t.Errorf("EmailCI: got %q", created.EmailCI)
	}
	if created.Role != models.RoleAdmin {
		t.Errorf("expected default role admin, got %q", created.Role)
	}
}

func TestStore_Create_RequiresCredential(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		Name:  "No Creds",
		Email: "nocreds@example.com",
	})
	if err == nil {
		t.Fatal("expected error for user without password or Google account")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := models.User{Name: "A", Email: "dup@example.com", PasswordHash: "h"}
	if _, err := store.Create(ctx, u); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	u.Email = "DUP@example.com"
	_, err := store.Create(ctx, u)
	if err != userstore.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Name: "B", Email: "case@example.com", PasswordHash: "h",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.GetByEmail(ctx, "  CASE@Example.COM ")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected user %v, got %v", created.ID, found.ID)
	}
}

func TestStore_LinkGoogleSub(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Name: "C", Email: "google@example.com", PasswordHash: "h",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.LinkGoogleSub(ctx, created.ID, "sub-12345"); err != nil {
		t.Fatalf("LinkGoogleSub failed: %v", err)
	}

	found, err := store.GetByGoogleSub(ctx, "sub-12345")
	if err != nil {
		t.Fatalf("GetByGoogleSub failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected user %v, got %v", created.ID, found.ID)
	}

	if _, err := store.GetByGoogleSub(ctx, "unknown-sub"); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}
