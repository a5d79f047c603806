// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event status labels. "Akan Datang" appears in legacy documents and is
// normalized to StatusSegera at the store boundary.
const (
	EventStatusSegera      = "Segera"
	EventStatusBerlangsung = "Berlangsung"
	EventStatusSelesai     = "Selesai"

	// LegacyEventStatusAkanDatang only appears in old documents. Stores
	// fold it into Segera on read and include it in Segera filters.
	LegacyEventStatusAkanDatang = "Akan Datang"
)

// EventStatuses lists the canonical status values in display order.
var EventStatuses = []string{EventStatusSegera, EventStatusBerlangsung, EventStatusSelesai}

// Event is a community event shown on the public site. Field names keep the
// original document layout of the `acara` collection.
type Event struct {
	ID               primitive.ObjectID `bson:"_id"`
	Name             string             `bson:"nama_acara"`
	Description      string             `bson:"deskripsi_acara"`
	Date             string             `bson:"tanggal_acara"` // YYYY-MM-DD
	Time             string             `bson:"waktu_acara"`
	Location         string             `bson:"lokasi"`
	Organizer        string             `bson:"penyelenggara"`
	RegistrationLink string             `bson:"link_pendaftaran"`
	PosterURL        string             `bson:"poster_url"`
	Status           string             `bson:"status_acara"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

// NormalizeEventStatus maps legacy labels onto the canonical set and defaults
// empty values to Segera.
func NormalizeEventStatus(s string) string {
	switch s {
	case "", LegacyEventStatusAkanDatang:
		return EventStatusSegera
	default:
		return s
	}
}

// ValidEventStatus reports whether s is one of the canonical labels.
func ValidEventStatus(s string) bool {
	for _, v := range EventStatuses {
		if s == v {
			return true
		}
	}
	return false
}
