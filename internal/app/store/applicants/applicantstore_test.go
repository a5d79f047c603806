package applicantstore_test

import (
	"testing"

	applicantstore "github.com/datasea-id/webhub/internal/app/store/applicants"
	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/datasea-id/webhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicantstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Applicant{
		JobID:    "64aa00bb11cc22dd33ee44ff",
		JobTitle: "Data Analyst Volunteer",
		Name:     "Budi Santoso",
		Email:    "budi@example.com",
		Whatsapp: "081234567890",
		Reason:   "Ingin belajar analitik data.",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_ByJobID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applicantstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, a := range []models.Applicant{
		{JobID: "job-1", Name: "A"},
		{JobID: "job-2", Name: "B"},
		{JobID: "job-1", Name: "C"},
	} {
		if _, err := store.Create(ctx, a); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := store.ByJobID(ctx, "job-1")
	if err != nil {
		t.Fatalf("ByJobID failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 applicants, got %d", len(got))
	}
	for _, a := range got {
		if a.JobID != "job-1" {
			t.Errorf("unexpected jobId %q", a.JobID)
		}
	}

	n, err := store.Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 total applicants, got %d", n)
	}
}
