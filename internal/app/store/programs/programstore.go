// internal/app/store/programs/programstore.go
package programstore

import (
	"context"
	"time"

	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists work programs. Both categories live in one collection with
// kategori as an attribute, so moving a program between Besar and Divisi is
// a single atomic update.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("program_kerja")}
}

func (s *Store) Create(ctx context.Context, p models.WorkProgram) (models.WorkProgram, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.NameCI = text.Fold(p.Name)
	if p.Status == "" {
		p.Status = models.ProgramStatusRencana
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.WorkProgram{}, err
	}
	return p, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.WorkProgram, error) {
	var p models.WorkProgram
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.WorkProgram{}, err
	}
	return p, nil
}

// Update replaces the mutable fields of a work program, including kategori,
// and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p models.WorkProgram) error {
	set := bson.M{
		"nama_proker": p.Name,
		"nama_ci":     text.Fold(p.Name),
		"deskripsi":   p.Description,
		"divisi":      p.Division,
		"status":      p.Status,
		"kategori":    p.Kategori,
		"updated_at":  time.Now().UTC(),
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a work program by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns work programs matching the given filter.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.WorkProgram, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var programs []models.WorkProgram
	if err := cur.All(ctx, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

// All returns every work program sorted by folded name.
func (s *Store) All(ctx context.Context) ([]models.WorkProgram, error) {
	return s.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "nama_ci", Value: 1}, {Key: "_id", Value: 1}}))
}

// ByKategori returns work programs in one category sorted by folded name.
func (s *Store) ByKategori(ctx context.Context, kategori string) ([]models.WorkProgram, error) {
	return s.Find(ctx, bson.M{"kategori": kategori},
		options.Find().SetSort(bson.D{{Key: "nama_ci", Value: 1}, {Key: "_id", Value: 1}}))
}

// Count returns the number of work programs matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
