// internal/domain/models/applicant.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Applicant is a volunteer application (applicants collection). The position
// id and title are copied at submission time; there is no enforced relation
// back to the positions collection. Applications are write-only here: the
// admin side never reads them, HR works from the database directly.
type Applicant struct {
	ID          primitive.ObjectID `bson:"_id"`
	JobID       string             `bson:"jobId"`
	JobTitle    string             `bson:"jobTitle"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Whatsapp    string             `bson:"whatsapp"`
	LinkedinURL string             `bson:"linkedinUrl,omitempty"`
	Reason      string             `bson:"reason"`
	CreatedAt   time.Time          `bson:"created_at"`
}
