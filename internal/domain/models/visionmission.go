// internal/domain/models/visionmission.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VisionMission is the singleton visi/misi document (visi_misi collection).
// It is updated in place; there is no create or delete path for it.
type VisionMission struct {
	ID          primitive.ObjectID `bson:"_id"`
	Vision      string             `bson:"visi"`
	Missions    []string           `bson:"misi"`
	ChairQuote  string             `bson:"quote_ketua,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at"`
	UpdatedByID primitive.ObjectID `bson:"updated_by_id,omitempty"`
}
