package repository

import (
	"context"

	"mdr/internal/domain/entity"
)

// AuditLogRepository writes audit rows in the caller's transaction.
type AuditLogRepository interface {
	RecordProfileUpdate(ctx context.Context, log *entity.ProfileUpdateLog) error
	RecordAccountDeletion(ctx context.Context, log *entity.AccountDeletionLog) error
}
