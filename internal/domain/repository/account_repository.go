// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mdr/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository is the account directory.
type AccountRepository interface {
	// FindByID retrieves an account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUsername retrieves an account by its exact username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByEmail retrieves an account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByPatientID retrieves the account linked to a patient profile.
	FindByPatientID(ctx context.Context, patientID uuid.UUID) (*entity.Account, error)

	// FindByIDForUpdate is FindByID holding a row lock until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmailForUpdate is FindByEmail holding a row lock until the transaction ends.
	FindByEmailForUpdate(ctx context.Context, email string) (*entity.Account, error)

	// List returns every account ordered by username.
	List(ctx context.Context) ([]*entity.Account, error)

	// Create persists a new account and assigns its ID.
	Create(ctx context.Context, account *entity.Account) error

	// Update persists all mutable fields of an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete permanently removes the account.
	Delete(ctx context.Context, id uuid.UUID) error
}
