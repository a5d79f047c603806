// internal/domain/models/position.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Work modes for volunteer positions.
var PositionTypes = []string{"Remote", "Onsite", "Hybrid"}

// Position is an open volunteer posting (positions collection).
type Position struct {
	ID           primitive.ObjectID `bson:"_id"`
	Title        string             `bson:"title"`
	Division     string             `bson:"division"`
	Type         string             `bson:"type"` // work mode
	Description  string             `bson:"description"`
	Requirements []string           `bson:"requirements"`
	IsOpen       bool               `bson:"isOpen"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}
