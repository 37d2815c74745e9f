package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileUpdateLogModel mirrors the 'profile_update_logs' table. AccountID is not a
// foreign key so the trail outlives the account.
type ProfileUpdateLogModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ChangedFields []string  `gorm:"type:jsonb;serializer:json;not null"`
	Timestamp     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileUpdateLogModel) TableName() string {
	return "profile_update_logs"
}

// AccountDeletionLogModel mirrors the 'account_deletion_logs' table.
type AccountDeletionLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Timestamp time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AccountDeletionLogModel) TableName() string {
	return "account_deletion_logs"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&PatientModel{},
		&AccountModel{},
		&ProfileUpdateLogModel{},
		&AccountDeletionLogModel{},
	}
}
