package impl

import (
	"context"
	"log/slog"
	"slices"

	"mdr/config"
	deliverycontext "mdr/internal/delivery/context"
	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/domain/repository"
	"mdr/internal/domain/service"
	"mdr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	generator    service.PasswordGenerator
	tokenService service.TokenService
	tokens       *lifecycleTokens
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	Generator    service.PasswordGenerator
	TokenPolicy  service.TokenPolicy
	TokenService service.TokenService
	Notifier     service.NotificationDispatcher
	Links        service.LinkBuilder
	Clock        service.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		generator:    params.Generator,
		tokenService: params.TokenService,
		tokens: &lifecycleTokens{
			policy:   params.TokenPolicy,
			notifier: params.Notifier,
			links:    params.Links,
			clock:    params.Clock,
			validity: newTokenValidity(params.Config),
		},
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProvisionAccount creates a staff account with a random temporary password and
// mails the owner a setup link. Patient accounts cannot be provisioned.
func (srv *accountService) ProvisionAccount(ctx context.Context, input *usecase.ProvisionAccountInput) (*entity.Account, error) {
	srv.log(ctx).Info("Provisioning account", slog.String("username", input.Username), slog.Any("role", input.Role))

	if input.Role == entity.RolePatient {
		return nil, errors.Wrap(domainerrors.ErrPatientSelfRegistrationOnly, "account provisioning rejected")
	}
	if !input.Role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidRole, "account provisioning rejected for role %q", input.Role)
	}

	temporaryPassword, err := srv.generator.GenerateTemporary()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate temporary password")
	}

	passwordHash, err := srv.hasher.Hash(temporaryPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash temporary password")
	}

	account := &entity.Account{
		Username:     input.Username,
		Role:         input.Role,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: passwordHash,
		IAMID:        uuid.NewString(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if err := ensureAvailable(ctx, accountRepo, input.Username, input.Email, nil); err != nil {
			return err
		}

		token, err := srv.tokens.issue(account, entity.TokenPurposeVerify, srv.tokens.validity.setup)
		if err != nil {
			return err
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		return srv.tokens.send(ctx, srv.log(ctx), account, entity.LinkPurposeAccountSetup, token)
	})
	if err != nil {
		srv.log(ctx).Warn("Account provisioning failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to provision account")
	}

	srv.log(ctx).Info("Account provisioned", slog.Any("accountID", account.ID), slog.Any("role", account.Role))

	return account, nil
}

// RegisterPatient creates a patient account linked to the patient profile that
// carries the same email, and mails an email confirmation link.
func (srv *accountService) RegisterPatient(ctx context.Context, input *usecase.RegisterPatientInput) (*entity.Account, error) {
	srv.log(ctx).Info("Starting patient self-registration", slog.String("username", input.Username))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var account *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		patientRepo := repoFactory.PatientRepo()

		if err := ensureAvailable(ctx, accountRepo, input.Username, input.Email, nil); err != nil {
			return err
		}

		patient, err := patientRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrPatientNotFound) {
				return errors.Wrap(domainerrors.ErrPatientProfileNotFound, "patient self-registration rejected")
			}

			return errors.Wrap(err, "failed to find patient profile")
		}

		if err := ensurePatientUnlinked(ctx, accountRepo, patient); err != nil {
			return err
		}

		newAccount := &entity.Account{
			Username:     input.Username,
			Role:         entity.RolePatient,
			Email:        input.Email,
			PhoneNumber:  input.PhoneNumber,
			PasswordHash: passwordHash,
			IAMID:        uuid.NewString(),
			PatientID:    &patient.ID,
			Patient:      patient,
		}

		token, err := srv.tokens.issue(newAccount, entity.TokenPurposeVerify, srv.tokens.validity.setup)
		if err != nil {
			return err
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create patient account")
		}

		if err := srv.tokens.send(ctx, srv.log(ctx), newAccount, entity.LinkPurposeConfirmEmail, token); err != nil {
			return err
		}
		account = newAccount

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Patient self-registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register patient")
	}

	srv.log(ctx).Info("Patient registered", slog.Any("accountID", account.ID), slog.Any("patientID", account.PatientID))

	return account, nil
}

// CompleteAccountSetup sets the first password of a provisioned account and
// marks its email verified.
func (srv *accountService) CompleteAccountSetup(ctx context.Context, input *usecase.SetPasswordInput) error {
	return srv.setPasswordWithToken(ctx, entity.TokenPurposeVerify, input, func(account *entity.Account) {
		account.IsVerified = true
	})
}

// ResetPassword replaces the password after validating the reset token.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.SetPasswordInput) error {
	return srv.setPasswordWithToken(ctx, entity.TokenPurposeReset, input, nil)
}

func (srv *accountService) setPasswordWithToken(
	ctx context.Context,
	purpose entity.TokenPurpose,
	input *usecase.SetPasswordInput,
	mutate func(*entity.Account),
) error {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return errors.Wrap(err, "password does not meet security requirements")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := srv.tokens.lockAndValidate(ctx, accountRepo, purpose, input.Email, input.Token)
		if err != nil {
			return err
		}

		account.PasswordHash = passwordHash
		account.ClearToken(purpose)
		if mutate != nil {
			mutate(account)
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password change rejected", slog.Any("purpose", purpose), slog.Any("error", err))

		return errors.Wrap(err, "failed to set password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("purpose", purpose))

	return nil
}

// CheckToken reports whether the token is currently valid without consuming it.
func (srv *accountService) CheckToken(ctx context.Context, input *usecase.CheckTokenInput) error {
	if !input.Purpose.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown token purpose %q", input.Purpose)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := repoFactory.AccountRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrapf(domainerrors.ErrInvalidToken, "%s token rejected", input.Purpose)
			}

			return errors.Wrap(err, "failed to load account")
		}

		if !srv.tokens.policy.Validate(account.Token(input.Purpose), input.Token, srv.tokens.clock.Now()) {
			return errors.Wrapf(domainerrors.ErrInvalidToken, "%s token rejected", input.Purpose)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "token check failed")
	}

	return nil
}

// RequestPasswordReset issues a reset token for the account with the email and mails the link.
func (srv *accountService) RequestPasswordReset(ctx context.Context, email string) error {
	srv.log(ctx).Info("Password reset requested")

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByEmailForUpdate(ctx, email)
		if err != nil {
			return wrapLookupError(err)
		}

		token, err := srv.tokens.issue(account, entity.TokenPurposeReset, srv.tokens.validity.reset)
		if err != nil {
			return err
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to store reset token")
		}

		return srv.tokens.send(ctx, srv.log(ctx), account, entity.LinkPurposePasswordReset, token)
	})
	if err != nil {
		return errors.Wrap(err, "failed to request password reset")
	}

	return nil
}

// ConfirmEmail consumes the verification token and marks the email verified.
func (srv *accountService) ConfirmEmail(ctx context.Context, input *usecase.TokenInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := srv.tokens.lockAndValidate(ctx, accountRepo, entity.TokenPurposeVerify, input.Email, input.Token)
		if err != nil {
			return err
		}

		account.IsVerified = true
		account.ClearToken(entity.TokenPurposeVerify)

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to mark email verified")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Email confirmation rejected", slog.Any("error", err))

		return errors.Wrap(err, "failed to confirm email")
	}

	return nil
}

// RequestEmailReverification marks the account unverified and mails a fresh confirmation link.
func (srv *accountService) RequestEmailReverification(ctx context.Context, accountID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return wrapLookupError(err)
		}

		token, err := srv.tokens.prepareReverification(account)
		if err != nil {
			return err
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to store verification token")
		}

		return srv.tokens.send(ctx, srv.log(ctx), account, entity.LinkPurposeConfirmEmail, token)
	})
	if err != nil {
		return errors.Wrap(err, "failed to request email re-verification")
	}

	return nil
}

// RequestAccountDeletion issues a deletion token and mails the confirmation link.
func (srv *accountService) RequestAccountDeletion(ctx context.Context, accountID uuid.UUID) error {
	srv.log(ctx).Info("Account deletion requested", slog.Any("accountID", accountID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return wrapLookupError(err)
		}

		token, err := srv.tokens.issue(account, entity.TokenPurposeDelete, srv.tokens.validity.delete)
		if err != nil {
			return err
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to store deletion token")
		}

		return srv.tokens.send(ctx, srv.log(ctx), account, entity.LinkPurposeConfirmDeletion, token)
	})
	if err != nil {
		return errors.Wrap(err, "failed to request account deletion")
	}

	return nil
}

// ConfirmAccountDeletion removes the account after validating the deletion token
// and records the deletion in the same transaction.
func (srv *accountService) ConfirmAccountDeletion(ctx context.Context, input *usecase.TokenInput) error {
	var deletedID uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := srv.tokens.lockAndValidate(ctx, accountRepo, entity.TokenPurposeDelete, input.Email, input.Token)
		if err != nil {
			return err
		}

		if err := srv.removeAccount(ctx, repoFactory, account.ID); err != nil {
			return err
		}
		deletedID = account.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account deletion rejected", slog.Any("error", err))

		return errors.Wrap(err, "failed to confirm account deletion")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", deletedID))

	return nil
}

// DeleteAccount removes the account immediately. Administrative use only.
func (srv *accountService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.removeAccount(ctx, repoFactory, accountID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted by administrator", slog.Any("accountID", accountID))

	return nil
}

func (srv *accountService) removeAccount(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID) error {
	if err := repoFactory.AccountRepo().Delete(ctx, accountID); err != nil {
		return wrapLookupError(err)
	}

	deletionLog := &entity.AccountDeletionLog{
		AccountID: accountID,
		Timestamp: srv.tokens.clock.Now(),
	}
	if err := repoFactory.AuditLogRepo().RecordAccountDeletion(ctx, deletionLog); err != nil {
		return errors.Wrap(err, "failed to record account deletion")
	}

	return nil
}

// InactivateAccount clears the pending reset token.
func (srv *accountService) InactivateAccount(ctx context.Context, accountID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return wrapLookupError(err)
		}

		account.ClearToken(entity.TokenPurposeReset)

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to inactivate account")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to inactivate account")
	}

	srv.log(ctx).Info("Account inactivated", slog.Any("accountID", accountID))

	return nil
}

// UpdateAccount applies administrative changes. A changed email sends the account
// through re-verification and is copied to a linked patient profile.
func (srv *accountService) UpdateAccount(ctx context.Context, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByIDForUpdate(ctx, input.ID)
		if err != nil {
			return wrapLookupError(err)
		}

		changed, err := applyAccountChanges(ctx, accountRepo, account, input)
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			updated = account

			return nil
		}

		var token *entity.PendingToken
		if slices.Contains(changed, fieldEmail) {
			if token, err = srv.tokens.prepareReverification(account); err != nil {
				return err
			}
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		if slices.Contains(changed, fieldEmail) && account.IsPatient() {
			if err := syncPatientEmail(ctx, repoFactory.PatientRepo(), account); err != nil {
				return err
			}
		}

		if err := recordProfileUpdate(ctx, repoFactory, account.ID, changed, srv.tokens.clock); err != nil {
			return err
		}

		if token != nil {
			if err := srv.tokens.send(ctx, srv.log(ctx), account, entity.LinkPurposeConfirmEmail, token); err != nil {
				return err
			}
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	return updated, nil
}

func applyAccountChanges(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	account *entity.Account,
	input *usecase.UpdateAccountInput,
) ([]string, error) {
	var changed []string

	if input.Role != nil && *input.Role != account.Role {
		role := *input.Role
		switch {
		case !role.IsValid():
			return nil, errors.Wrapf(domainerrors.ErrInvalidRole, "account update rejected for role %q", role)
		case role == entity.RolePatient:
			return nil, errors.Wrap(domainerrors.ErrPatientSelfRegistrationOnly, "account update rejected")
		case account.IsPatient():
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("patient accounts keep the patient role"), "account update rejected")
		}
		account.Role = role
		changed = append(changed, fieldRole)
	}

	var username, email string
	if input.Username != nil && *input.Username != "" && *input.Username != account.Username {
		username = *input.Username
	}
	if input.Email != nil && *input.Email != "" && *input.Email != account.Email {
		email = *input.Email
	}
	if err := ensureAvailable(ctx, accountRepo, username, email, account); err != nil {
		return nil, err
	}

	if username != "" {
		account.Username = username
		changed = append(changed, fieldUsername)
	}
	if email != "" {
		account.Email = email
		changed = append(changed, fieldEmail)
	}
	if input.PhoneNumber != nil && *input.PhoneNumber != "" && *input.PhoneNumber != account.PhoneNumber {
		account.PhoneNumber = *input.PhoneNumber
		changed = append(changed, fieldPhoneNumber)
	}

	return changed, nil
}

// ensurePatientUnlinked rejects a patient profile that another account already owns.
func ensurePatientUnlinked(ctx context.Context, accountRepo repository.AccountRepository, patient *entity.Patient) error {
	owner, err := accountRepo.FindByPatientID(ctx, patient.ID)
	switch {
	case err == nil:
		return errors.Wrapf(domainerrors.ErrPatientProfileLinked, "patient %s is linked to account %s", patient.ID, owner.ID)
	case errors.Is(err, repository.ErrAccountNotFound):
		return nil
	default:
		return errors.Wrap(err, "failed to check patient profile link")
	}
}

// syncPatientEmail copies the account email onto the linked patient profile.
func syncPatientEmail(ctx context.Context, patientRepo repository.PatientRepository, account *entity.Account) error {
	patient, err := loadPatient(ctx, patientRepo, account)
	if err != nil {
		return err
	}
	patient.Email = account.Email

	return errors.Wrap(patientRepo.Update(ctx, patient), "failed to update patient email")
}

// GetAccount retrieves an account by ID.
func (srv *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			return wrapLookupError(err)
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}

	return account, nil
}

// GetAccountByUsername retrieves an account by its exact username.
func (srv *accountService) GetAccountByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByUsername(ctx, username)
		if err != nil {
			return wrapLookupError(err)
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}

	return account, nil
}

// ListAccounts returns every account.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	var accounts []*entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list accounts")
		}
		accounts = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// Login verifies the password and issues an access token. Unknown usernames
// and wrong passwords fail the same way.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log in")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login password mismatch", slog.Any("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		ExpiresIn:   int64(srv.tokenService.AccessTokenTTL().Seconds()),
		Account:     account,
	}, nil
}
