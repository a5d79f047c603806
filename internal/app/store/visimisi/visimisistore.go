// internal/app/store/visimisi/visimisistore.go
package visimisistore

import (
	"context"
	"time"

	"github.com/datasea-id/webhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists the singleton visi/misi document. Get returns an empty
// value when nothing has been saved yet; Save upserts in place.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("visi_misi")}
}

// Get returns the visi/misi document, or a zero value if none exists.
func (s *Store) Get(ctx context.Context) (models.VisionMission, error) {
	var vm models.VisionMission
	err := s.c.FindOne(ctx, bson.M{}).Decode(&vm)
	if err == mongo.ErrNoDocuments {
		return models.VisionMission{}, nil
	}
	if err != nil {
		return models.VisionMission{}, err
	}
	return vm, nil
}

// Save upserts the singleton document. Empty mission entries are dropped
// so the public page never renders blank bullet points.
func (s *Store) Save(ctx context.Context, vm models.VisionMission, updatedBy primitive.ObjectID) (models.VisionMission, error) {
	missions := make([]string, 0, len(vm.Missions))
	for _, m := range vm.Missions {
		if m != "" {
			missions = append(missions, m)
		}
	}
	vm.Missions = missions
	vm.UpdatedAt = time.Now().UTC()
	vm.UpdatedByID = updatedBy

	set := bson.M{
		"visi":          vm.Vision,
		"misi":          vm.Missions,
		"quote_ketua":   vm.ChairQuote,
		"updated_at":    vm.UpdatedAt,
		"updated_by_id": vm.UpdatedByID,
	}
	res, err := s.c.UpdateOne(ctx, bson.M{}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return models.VisionMission{}, err
	}
	if res.UpsertedID != nil {
		if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
			vm.ID = id
		}
	}
	return vm, nil
}
