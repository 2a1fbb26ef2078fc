package registration

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType identifies the kind of national identity document a parent
// registered with.
type DocumentType string

const (
	// DocumentUnified is the 12-digit unified national identity card.
	DocumentUnified DocumentType = "unified"
	// DocumentCivilStatus is the legacy 8-digit civil status identity card.
	DocumentCivilStatus DocumentType = "civil_status"
)

// IDLength returns the exact digit count mandated for the document type,
// or 0 when the type is not recognized.
func (t DocumentType) IDLength() int {
	switch t {
	case DocumentUnified:
		return 12
	case DocumentCivilStatus:
		return 8
	default:
		return 0
	}
}

// Valid reports whether t is one of the recognized document types.
func (t DocumentType) Valid() bool {
	return t.IDLength() != 0
}

// BirthRecord maps to the births table. Records are immutable once inserted;
// only the retention purge removes them.
type BirthRecord struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	FatherID     string       `db:"father_id" json:"father_id"`
	FatherIDType DocumentType `db:"father_id_type" json:"father_id_type"`
	FatherName   string       `db:"father_name" json:"father_name"`
	MotherID     string       `db:"mother_id" json:"mother_id"`
	MotherIDType DocumentType `db:"mother_id_type" json:"mother_id_type"`
	MotherName   string       `db:"mother_name" json:"mother_name"`
	HospitalName string       `db:"hospital_name" json:"hospital_name"`
	BirthDate    time.Time    `db:"birth_date" json:"birth_date"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// RawBirthRequest is the unvalidated field set a hospital submits.
type RawBirthRequest struct {
	FatherID     string `json:"father_id"`
	FatherIDType string `json:"father_id_type"`
	FatherName   string `json:"father_name"`
	MotherID     string `json:"mother_id"`
	MotherIDType string `json:"mother_id_type"`
	MotherName   string `json:"mother_name"`
	HospitalName string `json:"hospital_name"`
	BirthDate    string `json:"birth_date"`
}
