// internal/app/store/events/eventstore.go
package eventstore

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
	return &Store{c: db.Collection("acara")}
}

func (s *Store) Create(ctx context.Context, ev models.Event) (models.Event, error) {
	now := time.Now().UTC()
	ev.ID = primitive.NewObjectID()
	ev.Status = models.NormalizeEventStatus(ev.Status)
	ev.CreatedAt = now
	ev.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, ev); err != nil {
		return models.Event{}, err
	}
	return ev, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var ev models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ev); err != nil {
		return models.Event{}, err
	}
	ev.Status = models.NormalizeEventStatus(ev.Status)
	return ev, nil
}

// Update replaces the mutable fields of an event and refreshes UpdatedAt.
// The admin form always posts the full field set, so every field is written.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, ev models.Event) error {
	set := bson.M{
		"nama_acara":       ev.Name,
		"deskripsi_acara":  ev.Description,
		"tanggal_acara":    ev.Date,
		"waktu_acara":      ev.Time,
		"lokasi":           ev.Location,
		"penyelenggara":    ev.Organizer,
		"link_pendaftaran": ev.RegistrationLink,
		"status_acara":     models.NormalizeEventStatus(ev.Status),
		"updated_at":       time.Now().UTC(),
	}
	if ev.PosterURL != "" {
		set["poster_url"] = ev.PosterURL
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes an event by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns events matching the given filter. Legacy status labels are
// folded to the canonical set on the way out.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Event, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	for i := range events {
		events[i].Status = models.NormalizeEventStatus(events[i].Status)
	}
	return events, nil
}

// All returns every event sorted by event date descending, for the admin
// list where the newest event matters most.
func (s *Store) All(ctx context.Context) ([]models.Event, error) {
	return s.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "tanggal_acara", Value: -1}, {Key: "_id", Value: 1}}))
}

// AllByDate returns every event sorted by event date ascending, the order
// the public archive shows.
func (s *Store) AllByDate(ctx context.Context) ([]models.Event, error) {
	return s.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "tanggal_acara", Value: 1}, {Key: "_id", Value: 1}}))
}

// Upcoming returns up to limit events with Segera status, soonest first.
// Documents still carrying the legacy label are included.
func (s *Store) Upcoming(ctx context.Context, limit int64) ([]models.Event, error) {
	filter := bson.M{"status_acara": bson.M{"$in": []string{
		models.EventStatusSegera,
		models.LegacyEventStatusAkanDatang,
	}}}
	return s.Find(ctx, filter,
		options.Find().
			SetSort(bson.D{{Key: "tanggal_acara", Value: 1}, {Key: "_id", Value: 1}}).
			SetLimit(limit))
}

// Count returns the number of events matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
