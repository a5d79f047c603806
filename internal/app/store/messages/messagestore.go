// internal/app/store/messages/messagestore.go
package messagestore

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
	return &Store{c: db.Collection("messages")}
}

// Create records an inbound contact message with Baru status.
func (s *Store) Create(ctx context.Context, m models.Message) (models.Message, error) {
	m.ID = primitive.NewObjectID()
	m.Status = models.MessageStatusBaru
	m.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Message{}, err
	}
	return m, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Message, error) {
	var m models.Message
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return models.Message{}, err
	}
	return m, nil
}

// SetStatus updates the message status. Reports whether a document matched.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error) {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// MarkReadIfNew moves a Baru message to Dibaca. The status guard in the
// filter makes the transition happen at most once, so a message an admin
// already moved to Selesai is never pulled back.
func (s *Store) MarkReadIfNew(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.MessageStatusBaru},
		bson.M{"$set": bson.M{"status": models.MessageStatusDibaca}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

// Delete removes a message by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns messages matching the given filter.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Message, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var messages []models.Message
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// All returns every message, newest first.
func (s *Store) All(ctx context.Context) ([]models.Message, error) {
	return s.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}))
}

// Recent returns the newest messages, capped at limit.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.Message, error) {
	return s.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}).
			SetLimit(limit))
}

// Count returns the number of messages matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// CountNew returns the number of unread (Baru) messages.
func (s *Store) CountNew(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": models.MessageStatusBaru})
}
