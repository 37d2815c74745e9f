package repository

import (
	"context"
	"errors"

	"mdr/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPatientNotFound is returned when no patient profile matches the lookup.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository reads and updates patient profiles created by patient registration.
type PatientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindByEmail(ctx context.Context, email string) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
}
