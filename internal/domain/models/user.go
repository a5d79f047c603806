// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Staff roles. The back-office only distinguishes admins today; the role
// field exists so finer-grained staff roles can be added without a migration.
const (
	RoleAdmin = "admin"
)

// User is a staff account for the admin back-office. Public visitors never
// have accounts; only staff sign in.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`    // unique, stored folded
	EmailCI      string             `bson:"email_ci"` // lowercase, diacritics-stripped
	Role         string             `bson:"role"`
	PasswordHash string             `bson:"password_hash,omitempty"` // empty for Google-only accounts
	GoogleSub    string             `bson:"google_sub,omitempty"`    // Google account subject, when linked

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// DefaultSiteName is the site name used across templates and discovery files.
const DefaultSiteName = "Datasea"
