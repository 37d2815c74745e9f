package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfileUpdateLog records which fields of an account or patient profile changed.
type ProfileUpdateLog struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	ChangedFields []string
	Timestamp     time.Time
}

// AccountDeletionLog records the permanent removal of an account.
type AccountDeletionLog struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Timestamp time.Time
}
