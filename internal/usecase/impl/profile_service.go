package impl

import (
	"context"
	"log/slog"

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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	tokens    *lifecycleTokens
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	TokenPolicy service.TokenPolicy
	Notifier    service.NotificationDispatcher
	Links       service.LinkBuilder
	Clock       service.Clock
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
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

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPatientProfile returns the patient account with its profile loaded.
func (srv *profileService) GetPatientProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			return wrapLookupError(err)
		}

		if _, err := loadPatient(ctx, repoFactory.PatientRepo(), found); err != nil {
			return err
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get patient profile")
	}

	return account, nil
}

// UpdatePatientProfile applies the patient's own changes to their profile and
// account. A changed email or phone number sends the account through re-verification.
func (srv *profileService) UpdatePatientProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdatePatientProfileInput) (*entity.Account, error) {
	srv.log(ctx).Info("Updating patient profile", slog.Any("accountID", accountID))

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		patientRepo := repoFactory.PatientRepo()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return wrapLookupError(err)
		}

		patient, err := loadPatient(ctx, patientRepo, account)
		if err != nil {
			return err
		}

		changed, err := applyPatientChanges(ctx, accountRepo, account, patient, input)
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			updated = account

			return nil
		}

		if err := patientRepo.Update(ctx, patient); err != nil {
			return errors.Wrap(err, "failed to update patient profile")
		}

		var token *entity.PendingToken
		if contactChanged(changed) {
			if token, err = srv.tokens.prepareReverification(account); err != nil {
				return err
			}

			if err := accountRepo.Update(ctx, account); err != nil {
				return errors.Wrap(err, "failed to update account")
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
		srv.log(ctx).Warn("Patient profile update failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update patient profile")
	}

	return updated, nil
}

// loadPatient returns the patient profile linked to a patient account and attaches it.
func loadPatient(ctx context.Context, patientRepo repository.PatientRepository, account *entity.Account) (*entity.Patient, error) {
	if !account.IsPatient() || account.PatientID == nil {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "account has no patient profile")
	}
	if account.Patient != nil {
		return account.Patient, nil
	}

	patient, err := patientRepo.FindByID(ctx, *account.PatientID)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPatientProfileNotFound, "linked patient profile missing")
		}

		return nil, errors.Wrap(err, "failed to find patient profile")
	}
	account.Patient = patient

	return patient, nil
}

func applyPatientChanges(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	account *entity.Account,
	patient *entity.Patient,
	input *usecase.UpdatePatientProfileInput,
) ([]string, error) {
	var changed []string

	setField := func(name string, value *string, target *string) {
		if value == nil || *value == "" || *value == *target {
			return
		}
		*target = *value
		changed = append(changed, name)
	}

	setField(fieldFirstName, input.FirstName, &patient.FirstName)
	setField(fieldLastName, input.LastName, &patient.LastName)
	setField(fieldGender, input.Gender, &patient.Gender)
	setField(fieldEmergencyContact, input.EmergencyContact, &patient.EmergencyContact)

	if input.Email != nil && *input.Email != "" && *input.Email != account.Email {
		if err := ensureAvailable(ctx, accountRepo, "", *input.Email, account); err != nil {
			return nil, err
		}
		account.Email = *input.Email
		patient.Email = *input.Email
		changed = append(changed, fieldEmail)
	}

	if input.PhoneNumber != nil && *input.PhoneNumber != "" && *input.PhoneNumber != account.PhoneNumber {
		account.PhoneNumber = *input.PhoneNumber
		patient.PhoneNumber = *input.PhoneNumber
		changed = append(changed, fieldPhoneNumber)
	}

	return changed, nil
}
