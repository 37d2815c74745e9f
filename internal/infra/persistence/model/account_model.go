// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. Each token slot is a nullable value/expiry pair.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_accounts_username"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_email"`
	PhoneNumber  string    `gorm:"type:varchar(30)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IAMID        string    `gorm:"column:iam_id;type:varchar(64)"`
	IsVerified   bool      `gorm:"not null;default:false"`

	VerifyToken          *string `gorm:"type:varchar(128)"`
	VerifyTokenExpiresAt *time.Time
	ResetToken           *string `gorm:"type:varchar(128)"`
	ResetTokenExpiresAt  *time.Time
	DeleteToken          *string `gorm:"type:varchar(128)"`
	DeleteTokenExpiresAt *time.Time

	PatientID *uuid.UUID    `gorm:"type:uuid;uniqueIndex:idx_accounts_patient_id"`
	Patient   *PatientModel `gorm:"foreignKey:PatientID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
