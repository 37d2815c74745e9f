package impl

import (
	"context"
	"slices"

	"mdr/internal/domain/entity"
	"mdr/internal/domain/repository"
	"mdr/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Field names recorded in profile update audit rows.
const (
	fieldUsername         = "username"
	fieldRole             = "role"
	fieldEmail            = "email"
	fieldPhoneNumber      = "phoneNumber"
	fieldFirstName        = "firstName"
	fieldLastName         = "lastName"
	fieldGender           = "gender"
	fieldEmergencyContact = "emergencyContact"
)

// contactChanged reports whether the changes touch a field that needs re-verification.
func contactChanged(changed []string) bool {
	return slices.Contains(changed, fieldEmail) || slices.Contains(changed, fieldPhoneNumber)
}

func recordProfileUpdate(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID, changed []string, clock service.Clock) error {
	updateLog := &entity.ProfileUpdateLog{
		AccountID:     accountID,
		ChangedFields: changed,
		Timestamp:     clock.Now(),
	}
	if err := repoFactory.AuditLogRepo().RecordProfileUpdate(ctx, updateLog); err != nil {
		return errors.Wrap(err, "failed to record profile update")
	}

	return nil
}
