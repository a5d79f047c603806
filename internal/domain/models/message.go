// internal/domain/models/message.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message status labels.
const (
	MessageStatusBaru    = "Baru"
	MessageStatusDibaca  = "Dibaca"
	MessageStatusSelesai = "Selesai"
)

// MessageStatuses lists the status values in lifecycle order.
var MessageStatuses = []string{MessageStatusBaru, MessageStatusDibaca, MessageStatusSelesai}

// Message is an inbound contact-form message (messages collection).
type Message struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	Instansi  string             `bson:"instansi"` // sender's organization/affiliation
	Email     string             `bson:"email"`
	Body      string             `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// ValidMessageStatus reports whether s is a known status label.
func ValidMessageStatus(s string) bool {
	for _, v := range MessageStatuses {
		if s == v {
			return true
		}
	}
	return false
}
