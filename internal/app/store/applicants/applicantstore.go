// internal/app/store/applicants/applicantstore.go
package applicantstore

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
	return &Store{c: db.Collection("applicants")}
}

// Create records a volunteer application.
func (s *Store) Create(ctx context.Context, a models.Applicant) (models.Applicant, error) {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Applicant{}, err
	}
	return a, nil
}

// ByJobID returns applications for one position, newest first.
func (s *Store) ByJobID(ctx context.Context, jobID string) ([]models.Applicant, error) {
	cur, err := s.c.Find(ctx, bson.M{"jobId": jobID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var applicants []models.Applicant
	if err := cur.All(ctx, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

// Count returns the number of applications matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
