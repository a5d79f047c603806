// internal/app/store/positions/positionstore.go
package positionstore

import (
	"context"
	"time"

	"github.com/datasea-id/webhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("positions")}
}

// Create inserts a volunteer position. New positions open by default.
func (s *Store) Create(ctx context.Context, p models.Position) (models.Position, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.IsOpen = true
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Requirements == nil {
		p.Requirements = []string{}
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Position{}, err
	}
	return p, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Position, error) {
	var p models.Position
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return models.Position{}, err
	}
	return p, nil
}

// SetOpen flips the open flag. Reports whether a document matched.
func (s *Store) SetOpen(ctx context.Context, id primitive.ObjectID, open bool) (bool, error) {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"isOpen":     open,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes a position by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns positions matching the given filter.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Position, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var positions []models.Position
	if err := cur.All(ctx, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// All returns every position, newest first.
func (s *Store) All(ctx context.Context) ([]models.Position, error) {
	return s.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}))
}

// FindOpen returns open positions, newest first. This is the public listing.
func (s *Store) FindOpen(ctx context.Context) ([]models.Position, error) {
	return s.Find(ctx, bson.M{"isOpen": true},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}))
}

// Count returns the number of positions matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
