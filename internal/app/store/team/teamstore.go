// internal/app/store/team/teamstore.go
package teamstore

import (
	"context"
	"sort"
	"time"

	"github.com/datasea-id/webhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tim_datasea")}
}

func (s *Store) Create(ctx context.Context, m models.TeamMember) (models.TeamMember, error) {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.NameCI = text.Fold(m.Name)
	m.CreatedAt = now
	m.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.TeamMember{}, err
	}
	return m, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.TeamMember, error) {
	var m models.TeamMember
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return models.TeamMember{}, err
	}
	return m, nil
}

// Update replaces the mutable fields of a team member and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, m models.TeamMember) error {
	set := bson.M{
		"nama":          m.Name,
		"nama_ci":       text.Fold(m.Name),
		"jabatan":       m.Role,
		"divisi":        m.Division,
		"linkedin_url":  m.LinkedinURL,
		"instagram_url": m.InstagramURL,
		"updated_at":    time.Now().UTC(),
	}
	if m.PhotoURL != "" {
		set["foto_url"] = m.PhotoURL
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Delete removes a team member by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns team members matching the given filter.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.TeamMember, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var members []models.TeamMember
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// All returns every team member with the executive board (BPH) first,
// then the other divisions, each division sorted by folded name.
func (s *Store) All(ctx context.Context) ([]models.TeamMember, error) {
	members, err := s.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "nama_ci", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	SortBPHFirst(members)
	return members, nil
}

// Count returns the number of team members matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// SortBPHFirst orders members so BPH comes before every other division.
// Within a division the existing order (folded name) is preserved.
func SortBPHFirst(members []models.TeamMember) {
	rank := func(div string) int {
		if div == models.DivisionBPH {
			return 0
		}
		return 1
	}
	sort.SliceStable(members, func(i, j int) bool {
		return rank(members[i].Division) < rank(members[j].Division)
	})
}
