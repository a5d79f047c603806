package programstore_test

import (
	"testing"

	programstore "github.com/datasea-id/webhub/internal/app/store/programs"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := programstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.WorkProgram{
		Name:     "Pelatihan Data",
		Division: "IT",
		Kategori: models.ProgramKategoriDivisi,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI != "pelatihan data" {
		t.Errorf("NameCI: got %q, want %q", created.NameCI, "pelatihan data")
	}
	if created.Status != models.ProgramStatusRencana {
		t.Errorf("expected default status Rencana, got %q", created.Status)
	}
}

func TestStore_Update_ChangesKategori(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := programstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.WorkProgram{
		Name:     "Datasea Summit",
		Division: "BPH",
		Kategori: models.ProgramKategoriDivisi,
		Status:   models.ProgramStatusRencana,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated := created
	updated.Kategori = models.ProgramKategoriBesar
	updated.Status = models.ProgramStatusBerjalan
	if err := store.Update(ctx, created.ID, updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Kategori != models.ProgramKategoriBesar {
		t.Errorf("Kategori: got %q, want Besar", found.Kategori)
	}
	if found.Status != models.ProgramStatusBerjalan {
		t.Errorf("Status: got %q, want Berjalan", found.Status)
	}

	// A category move never duplicates the document.
	n, err := store.Count(ctx, bson.M{"nama_proker": "Datasea Summit"})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected exactly 1 document after category change, got %d", n)
	}
}

func TestStore_ByKategori(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := programstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []models.WorkProgram{
		{Name: "Zeta", Kategori: models.ProgramKategoriBesar},
		{Name: "Alpha", Kategori: models.ProgramKategoriBesar},
		{Name: "Mid", Kategori: models.ProgramKategoriDivisi, Division: "HR"},
	}
	for _, p := range seed {
		if _, err := store.Create(ctx, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := store.ByKategori(ctx, models.ProgramKategoriBesar)
	if err != nil {
		t.Fatalf("ByKategori failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 Besar programs, got %d", len(got))
	}
	if got[0].Name != "Alpha" || got[1].Name != "Zeta" {
		t.Errorf("expected name order Alpha, Zeta; got %q, %q", got[0].Name, got[1].Name)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := programstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.WorkProgram{Name: "Gone", Kategori: models.ProgramKategoriBesar})
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
