package teamstore_test

import (
	"testing"

	teamstore "github.com/datasea-id/webhub/internal/app/store/team"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSortBPHFirst(t *testing.T) {
	members := []models.TeamMember{
		{Name: "Citra", Division: "IT"},
		{Name: "Andi", Division: "BPH"},
		{Name: "Budi", Division: "HR"},
		{Name: "Dewi", Division: "BPH"},
	}

	teamstore.SortBPHFirst(members)

	if members[0].Division != "BPH" || members[1].Division != "BPH" {
		t.Errorf("expected BPH members first, got %v", members)
	}
	// Stable: relative order inside each group is preserved.
	if members[0].Name != "Andi" || members[1].Name != "Dewi" {
		t.Errorf("expected Andi then Dewi in BPH group, got %q, %q", members[0].Name, members[1].Name)
	}
	if members[2].Name != "Citra" || members[3].Name != "Budi" {
		t.Errorf("expected Citra then Budi after BPH, got %q, %q", members[2].Name, members[3].Name)
	}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.TeamMember{
		Name:     "Andi Pratama",
		Role:     "Ketua",
		Division: "BPH",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI != "andi pratama" {
		t.Errorf("NameCI: got %q, want %q", created.NameCI, "andi pratama")
	}
}

func TestStore_All_BPHFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []models.TeamMember{
		{Name: "Zara", Division: "IT"},
		{Name: "Yusuf", Division: "BPH"},
		{Name: "Adi", Division: "HR"},
		{Name: "Bella", Division: "BPH"},
	}
	for _, m := range seed {
		if _, err := store.Create(ctx, m); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 members, got %d", len(got))
	}
	// BPH sorted by name first, then the rest sorted by name.
	wantOrder := []string{"Bella", "Yusuf", "Adi", "Zara"}
	for i, want := range wantOrder {
		if got[i].Name != want {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, want)
		}
	}
}

func TestStore_Update_KeepsPhotoWithoutReplacement(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.TeamMember{
		Name:     "Citra",
		Division: "Media Kreatif",
		PhotoURL: "https://res.cloudinary.com/demo/citra.png",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated := created
	updated.Role = "Koordinator"
	updated.PhotoURL = ""
	if err := store.Update(ctx, created.ID, updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Role != "Koordinator" {
		t.Errorf("Role: got %q, want Koordinator", found.Role)
	}
	if found.PhotoURL != "https://res.cloudinary.com/demo/citra.png" {
		t.Errorf("expected photo kept, got %q", found.PhotoURL)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teamstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.TeamMember{Name: "Gone", Division: "IT"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted, got %d", n)
	}
}
