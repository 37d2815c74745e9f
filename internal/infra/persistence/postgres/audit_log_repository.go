package postgres

import (
	"context"

	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/domain/repository"
	"mdr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// RecordProfileUpdate appends a profile update entry.
func (repo *auditLogRepository) RecordProfileUpdate(ctx context.Context, log *entity.ProfileUpdateLog) error {
	if err := ensureID(&log.ID); err != nil {
		return err
	}

	logM := &model.ProfileUpdateLogModel{
		ID:            log.ID,
		AccountID:     log.AccountID,
		ChangedFields: log.ChangedFields,
		Timestamp:     log.Timestamp,
	}
	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record profile update")
	}

	return nil
}

// RecordAccountDeletion appends an account deletion entry.
func (repo *auditLogRepository) RecordAccountDeletion(ctx context.Context, log *entity.AccountDeletionLog) error {
	if err := ensureID(&log.ID); err != nil {
		return err
	}

	logM := &model.AccountDeletionLogModel{
		ID:        log.ID,
		AccountID: log.AccountID,
		Timestamp: log.Timestamp,
	}
	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record account deletion")
	}

	return nil
}

func ensureID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate audit log id")
	}
	*id = generated

	return nil
}
