// internal/domain/models/workprogram.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Work-program categories. Besar programs are organization-wide (flagship);
// Divisi programs belong to a single division.
const (
	ProgramKategoriBesar  = "Besar"
	ProgramKategoriDivisi = "Divisi"
)

// Work-program status labels.
const (
	ProgramStatusRencana    = "Rencana"
	ProgramStatusBerjalan   = "Berjalan"
	ProgramStatusTerlaksana = "Terlaksana"
)

// ProgramStatuses lists the status values in lifecycle order.
var ProgramStatuses = []string{ProgramStatusRencana, ProgramStatusBerjalan, ProgramStatusTerlaksana}

// ProgramKategoris lists the category values.
var ProgramKategoris = []string{ProgramKategoriBesar, ProgramKategoriDivisi}

// WorkProgram is a community work program. A single collection holds both
// categories; kategori is an attribute so a category change is one update
// rather than a delete-and-reinsert across two collections.
type WorkProgram struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"nama_proker"`
	NameCI      string             `bson:"nama_ci"` // lowercase, diacritics-stripped
	Description string             `bson:"deskripsi"`
	Division    string             `bson:"divisi"`
	Status      string             `bson:"status"`
	Kategori    string             `bson:"kategori"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// ValidProgramStatus reports whether s is a known status label.
func ValidProgramStatus(s string) bool {
	for _, v := range ProgramStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ValidProgramKategori reports whether k is a known category.
func ValidProgramKategori(k string) bool {
	return k == ProgramKategoriBesar || k == ProgramKategoriDivisi
}
