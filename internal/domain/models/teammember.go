// internal/domain/models/teammember.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DivisionBPH is the executive-board division; it always sorts first in
// team listings.
const DivisionBPH = "BPH"

// Divisions lists the organizational divisions in display order.
var Divisions = []string{DivisionBPH, "HR", "Public Relation", "Media Kreatif", "IT"}

// TeamMember is a member shown on the public team page (tim_datasea).
type TeamMember struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"nama"`
	NameCI       string             `bson:"nama_ci"` // lowercase, diacritics-stripped
	Role         string             `bson:"jabatan"`
	Division     string             `bson:"divisi"`
	PhotoURL     string             `bson:"foto_url"`
	LinkedinURL  string             `bson:"linkedin_url,omitempty"`
	InstagramURL string             `bson:"instagram_url,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}
