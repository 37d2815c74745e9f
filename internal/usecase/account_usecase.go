// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mdr/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProvisionAccountInput defines the data an administrator supplies to create a staff account.
type ProvisionAccountInput struct {
	Username    string
	Email       string
	PhoneNumber string
	Role        entity.Role
}

// RegisterPatientInput defines the data a patient supplies to self-register.
type RegisterPatientInput struct {
	Username    string
	Email       string
	PhoneNumber string
	Password    string
}

// TokenInput carries the email and token taken from a mailed link.
type TokenInput struct {
	Email string
	Token string
}

// CheckTokenInput asks whether a token of the given purpose is currently valid.
type CheckTokenInput struct {
	Purpose entity.TokenPurpose
	Email   string
	Token   string
}

// SetPasswordInput completes a flow that ends with choosing a new password.
type SetPasswordInput struct {
	Email    string
	Token    string
	Password string
}

// UpdateAccountInput holds the administrative changes to an account. Nil fields are left untouched.
type UpdateAccountInput struct {
	ID          uuid.UUID
	Username    *string
	Role        *entity.Role
	Email       *string
	PhoneNumber *string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   int64
	Account     *entity.Account
}

// AccountUsecase covers the account lifecycle: provisioning, self-registration,
// the token-confirmed flows and administrative maintenance.
type AccountUsecase interface {
	ProvisionAccount(ctx context.Context, input *ProvisionAccountInput) (*entity.Account, error)
	RegisterPatient(ctx context.Context, input *RegisterPatientInput) (*entity.Account, error)
	CompleteAccountSetup(ctx context.Context, input *SetPasswordInput) error
	CheckToken(ctx context.Context, input *CheckTokenInput) error

	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *SetPasswordInput) error

	ConfirmEmail(ctx context.Context, input *TokenInput) error
	RequestEmailReverification(ctx context.Context, accountID uuid.UUID) error

	RequestAccountDeletion(ctx context.Context, accountID uuid.UUID) error
	ConfirmAccountDeletion(ctx context.Context, input *TokenInput) error

	InactivateAccount(ctx context.Context, accountID uuid.UUID) error
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
	UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*entity.Account, error)

	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*entity.Account, error)
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
