package usecase

import (
	"context"

	"mdr/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the operations a patient performs on their own profile.
type ProfileUsecase interface {
	GetPatientProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	UpdatePatientProfile(ctx context.Context, accountID uuid.UUID, input *UpdatePatientProfileInput) (*entity.Account, error)
}

// UpdatePatientProfileInput holds the patient-editable fields. Nil or empty fields are left untouched.
type UpdatePatientProfileInput struct {
	FirstName        *string
	LastName         *string
	Gender           *string
	Email            *string
	PhoneNumber      *string
	EmergencyContact *string
}
