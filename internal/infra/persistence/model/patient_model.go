package model

import (
	"time"

	"github.com/google/uuid"
)

// PatientModel mirrors the 'patients' table owned by patient registration.
type PatientModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName           string    `gorm:"type:varchar(100);not null"`
	LastName            string    `gorm:"type:varchar(100);not null"`
	DateOfBirth         time.Time `gorm:"type:date"`
	Gender              string    `gorm:"type:varchar(20)"`
	MedicalRecordNumber string    `gorm:"type:varchar(50);uniqueIndex:idx_patients_mrn"`
	Email               string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_patients_email"`
	PhoneNumber         string    `gorm:"type:varchar(30)"`
	Allergies           []string  `gorm:"type:jsonb;serializer:json"`
	EmergencyContact    string    `gorm:"type:varchar(100)"`
	AppointmentHistory  []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (PatientModel) TableName() string {
	return "patients"
}
