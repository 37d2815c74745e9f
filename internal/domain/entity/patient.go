package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the clinical profile created by patient registration. Account
// self-registration links to an existing Patient matched by email.
type Patient struct {
	ID                  uuid.UUID
	FirstName           string
	LastName            string
	DateOfBirth         time.Time
	Gender              string
	MedicalRecordNumber string
	Email               string
	PhoneNumber         string
	Allergies           []string
	EmergencyContact    string
	AppointmentHistory  []string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// FullName joins first and last name.
func (p *Patient) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
