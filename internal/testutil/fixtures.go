package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateEvent inserts a test event with the given name, date, and status.
func (f *Fixtures) CreateEvent(ctx context.Context, name, date, status string) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	ev := models.Event{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Date:      date,
		Time:      "09:00",
		Location:  "Jakarta",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("acara").InsertOne(ctx, ev); err != nil {
		f.t.Fatalf("failed to create test event: %v", err)
	}
	return ev
}

// CreateWorkProgram inserts a test work program.
func (f *Fixtures) CreateWorkProgram(ctx context.Context, name, kategori, status string) models.WorkProgram {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.WorkProgram{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Kategori:  kategori,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("program_kerja").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test work program: %v", err)
	}
	return p
}

// CreateTeamMember inserts a test team member.
func (f *Fixtures) CreateTeamMember(ctx context.Context, name, role, division string) models.TeamMember {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.TeamMember{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Role:      role,
		Division:  division,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("tim_datasea").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test team member: %v", err)
	}
	return m
}

// CreatePosition inserts a test volunteer position.
func (f *Fixtures) CreatePosition(ctx context.Context, title, division string, open bool) models.Position {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Position{
		ID:           primitive.NewObjectID(),
		Title:        title,
		Division:     division,
		Type:         "Remote",
		Requirements: []string{},
		IsOpen:       open,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("positions").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test position: %v", err)
	}
	return p
}

// CreateMessage inserts a test contact message with the given status.
func (f *Fixtures) CreateMessage(ctx context.Context, name, body, status string) models.Message {
	f.t.Helper()

	m := models.Message{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     "sender@example.com",
		Body:      body,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("messages").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test message: %v", err)
	}
	return m
}

// CreateAdmin inserts a staff account with the given bcrypt hash.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email, passwordHash string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		EmailCI:      text.Fold(email),
		Role:         models.RoleAdmin,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test admin: %v", err)
	}
	return u
}
