// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/domain/repository"
	"mdr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	accountUsernameIndex = "idx_accounts_username"
	accountEmailIndex    = "idx_accounts_email"
	accountPatientIndex  = "idx_accounts_patient_id"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, preloading the patient profile.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, repo.db, "id = ?", id)
}

// FindByUsername retrieves a single account by its exact username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.findOne(ctx, repo.db, "username = ?", username)
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, repo.db, "email = ?", email)
}

// FindByPatientID retrieves the account linked to the given patient profile.
func (repo *accountRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, repo.db, "patient_id = ?", patientID)
}

// FindByIDForUpdate locks the account row until the surrounding transaction ends.
func (repo *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, repo.db.Clauses(clause.Locking{Strength: "UPDATE"}), "id = ?", id)
}

// FindByEmailForUpdate locks the account row until the surrounding transaction ends.
func (repo *accountRepository) FindByEmailForUpdate(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, repo.db.Clauses(clause.Locking{Strength: "UPDATE"}), "email = ?", email)
}

func (repo *accountRepository) findOne(ctx context.Context, db *gorm.DB, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel
	err := db.WithContext(ctx).
		Preload("Patient").
		Where(query, arg).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// List returns all accounts ordered by username.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	if err := repo.db.WithContext(ctx).Order("username").Find(&accountMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Create persists a new account. A time-ordered UUID is assigned when ID is empty.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	}

	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(accountM).Error; err != nil {
		return translateAccountWriteError(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update overwrites every column of an existing account, including cleared token slots.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).Omit(clause.Associations).Save(accountM)
	if result.Error != nil {
		return translateAccountWriteError(result.Error, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete permanently removes the account row.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func translateAccountWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		switch {
		case violatesConstraint(err, accountUsernameIndex):
			return domainerrors.ErrUsernameInUse.WrapMessage(details)
		case violatesConstraint(err, accountPatientIndex):
			return domainerrors.ErrPatientProfileLinked.WrapMessage(details)
		}

		return domainerrors.ErrEmailInUse.WrapMessage(details)
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrPatientProfileNotFound.WrapMessage(details)
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing required account information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

// toAccountDomain converts an AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		Role:         entity.Role(data.Role),
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: data.PasswordHash,
		IAMID:        data.IAMID,
		IsVerified:   data.IsVerified,
		VerifyToken:  toPendingToken(entity.TokenPurposeVerify, data.VerifyToken, data.VerifyTokenExpiresAt),
		ResetToken:   toPendingToken(entity.TokenPurposeReset, data.ResetToken, data.ResetTokenExpiresAt),
		DeleteToken:  toPendingToken(entity.TokenPurposeDelete, data.DeleteToken, data.DeleteTokenExpiresAt),
		PatientID:    data.PatientID,
		Patient:      toPatientDomain(data.Patient),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to an AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:           data.ID,
		Username:     data.Username,
		Role:         data.Role.String(),
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: data.PasswordHash,
		IAMID:        data.IAMID,
		IsVerified:   data.IsVerified,
		PatientID:    data.PatientID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	accountM.VerifyToken, accountM.VerifyTokenExpiresAt = fromPendingToken(data.VerifyToken)
	accountM.ResetToken, accountM.ResetTokenExpiresAt = fromPendingToken(data.ResetToken)
	accountM.DeleteToken, accountM.DeleteTokenExpiresAt = fromPendingToken(data.DeleteToken)

	return accountM
}

func toPendingToken(purpose entity.TokenPurpose, value *string, expiresAt *time.Time) *entity.PendingToken {
	if value == nil || *value == "" || expiresAt == nil {
		return nil
	}

	return &entity.PendingToken{
		Purpose:   purpose,
		Value:     *value,
		ExpiresAt: *expiresAt,
	}
}

func fromPendingToken(token *entity.PendingToken) (*string, *time.Time) {
	if token == nil {
		return nil, nil
	}

	value := token.Value
	expiresAt := token.ExpiresAt

	return &value, &expiresAt
}
