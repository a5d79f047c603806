package visimisistore_test

import (
	"testing"

	visimisistore "github.com/datasea-id/webhub/internal/app/store/visimisi"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Get_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := visimisistore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vm, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if vm.Vision != "" || len(vm.Missions) != 0 {
		t.Errorf("expected zero value on empty collection, got %+v", vm)
	}
}

func TestStore_Save_ThenGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := visimisistore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := primitive.NewObjectID()
	saved, err := store.Save(ctx, models.VisionMission{
		Vision:     "Komunitas data terdepan",
		Missions:   []string{"Edukasi", "", "Kolaborasi"},
		ChairQuote: "Data untuk semua.",
	}, admin)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Empty mission entries are dropped.
	if len(saved.Missions) != 2 {
		t.Errorf("expected 2 missions, got %v", saved.Missions)
	}

	found, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found.Vision != "Komunitas data terdepan" {
		t.Errorf("Vision: got %q", found.Vision)
	}
	if found.ChairQuote != "Data untuk semua." {
		t.Errorf("ChairQuote: got %q", found.ChairQuote)
	}
	if found.UpdatedByID != admin {
		t.Errorf("UpdatedByID: got %v, want %v", found.UpdatedByID, admin)
	}
	if found.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestStore_Save_IsSingleton(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := visimisistore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := primitive.NewObjectID()
	if _, err := store.Save(ctx, models.VisionMission{Vision: "First"}, admin); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if _, err := store.Save(ctx, models.VisionMission{Vision: "Second"}, admin); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	n, err := db.Collection("visi_misi").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly 1 document, got %d", n)
	}

	found, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found.Vision != "Second" {
		t.Errorf("Vision: got %q, want Second", found.Vision)
	}
}
