package impl

import (
	"context"
	"net/url"
	"testing"
	"time"

	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	patientPassword = "Kettle#Plum42"
	freshPassword   = "Orchid&Lamp77"
)

func tokenFromLink(t *testing.T, link string) string {
	t.Helper()

	parsed, err := url.Parse(link)
	require.NoError(t, err)

	return parsed.Query().Get("token")
}

func TestLifecycle_ProvisionSendsSetupLink(t *testing.T) {
	f := newLifecycleFixture(t)

	account := f.provision(t, "dr.house", "house@mdr.example", entity.RoleDoctor)

	stored, ok := f.store.account(account.ID)
	require.True(t, ok)
	assert.False(t, stored.IsVerified)
	assert.NotEmpty(t, stored.IAMID)
	require.NotNil(t, stored.VerifyToken)
	assert.Equal(t, fixtureStart.Add(24*time.Hour), stored.VerifyToken.ExpiresAt)
	assert.Nil(t, stored.ResetToken)
	assert.Nil(t, stored.DeleteToken)

	msg := f.notifier.last()
	require.NotNil(t, msg)
	assert.Equal(t, entity.LinkPurposeAccountSetup, msg.Purpose)
	assert.Equal(t, "house@mdr.example", msg.To)
	assert.Contains(t, msg.Link, "/setup-password?")
	assert.Equal(t, stored.VerifyToken.Value, tokenFromLink(t, msg.Link))
}

func TestLifecycle_ProvisionRejectsPatientRole(t *testing.T) {
	f := newLifecycleFixture(t)

	account, err := f.accounts.ProvisionAccount(context.Background(), &usecase.ProvisionAccountInput{
		Username: "",
		Email:    "not-an-email",
		Role:     entity.RolePatient,
	})

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrPatientSelfRegistrationOnly))
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
	assert.Zero(t, f.store.accountCount())
	assert.Zero(t, f.notifier.count())
}

func TestLifecycle_UsernameAndEmailConflicts(t *testing.T) {
	f := newLifecycleFixture(t)
	f.provision(t, "nurse.joy", "joy@mdr.example", entity.RoleStaff)

	_, err := f.accounts.ProvisionAccount(context.Background(), &usecase.ProvisionAccountInput{
		Username: "nurse.joy",
		Email:    "other@mdr.example",
		Role:     entity.RoleStaff,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameInUse))
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))

	_, err = f.accounts.ProvisionAccount(context.Background(), &usecase.ProvisionAccountInput{
		Username: "nurse.joy2",
		Email:    "joy@mdr.example",
		Role:     entity.RoleStaff,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))

	// usernames compare case-sensitively
	f.provision(t, "Nurse.Joy", "joy.upper@mdr.example", entity.RoleStaff)
	assert.Equal(t, 2, f.store.accountCount())
}

func TestLifecycle_RegisterPatientRequiresProfile(t *testing.T) {
	f := newLifecycleFixture(t)

	account, err := f.accounts.RegisterPatient(context.Background(), &usecase.RegisterPatientInput{
		Username: "walkin",
		Email:    "walkin@mdr.example",
		Password: patientPassword,
	})

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrPatientProfileNotFound))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	assert.Zero(t, f.store.accountCount())
}

func TestLifecycle_RegisterPatientLinksProfile(t *testing.T) {
	f := newLifecycleFixture(t)

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)

	stored, ok := f.store.account(account.ID)
	require.True(t, ok)
	assert.Equal(t, entity.RolePatient, stored.Role)
	assert.False(t, stored.IsVerified)
	require.NotNil(t, stored.PatientID)
	assert.True(t, f.hasher.Check(patientPassword, stored.PasswordHash))
	require.NotNil(t, stored.VerifyToken)

	msg := f.notifier.last()
	require.NotNil(t, msg)
	assert.Equal(t, entity.LinkPurposeConfirmEmail, msg.Purpose)
	assert.Contains(t, msg.Link, "/redirect-confirm-email?")
}

func TestLifecycle_AdminEmailChangeMovesPatientProfile(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	ana := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)

	newEmail := "ana.silva@mdr.example"
	_, err := f.accounts.UpdateAccount(ctx, &usecase.UpdateAccountInput{ID: ana.ID, Email: &newEmail})
	require.NoError(t, err)

	patient, ok := f.store.patient(*ana.PatientID)
	require.True(t, ok)
	assert.Equal(t, newEmail, patient.Email)

	_, err = f.accounts.RegisterPatient(ctx, &usecase.RegisterPatientInput{
		Username: "impostor",
		Email:    "ana@mdr.example",
		Password: freshPassword,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrPatientProfileNotFound))
	assert.Equal(t, 1, f.store.accountCount())
}

func TestLifecycle_RegisterPatientRejectsLinkedProfile(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	ana := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	// Account email drifted away from the profile email.
	f.store.mutateAccount(ana.ID, func(account *entity.Account) {
		account.Email = "ana.silva@mdr.example"
	})

	account, err := f.accounts.RegisterPatient(ctx, &usecase.RegisterPatientInput{
		Username: "impostor",
		Email:    "ana@mdr.example",
		Password: freshPassword,
	})

	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrPatientProfileLinked))
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	assert.Equal(t, 1, f.store.accountCount())
}

func TestLifecycle_ConfirmEmailWithinValidityThenReplay(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	token := f.storedToken(t, account.ID, entity.TokenPurposeVerify).Value

	f.clock.Set(fixtureStart.Add(23*time.Hour + 59*time.Minute))
	require.NoError(t, f.accounts.ConfirmEmail(ctx, &usecase.TokenInput{Email: "ana@mdr.example", Token: token}))

	stored, _ := f.store.account(account.ID)
	assert.True(t, stored.IsVerified)
	assert.Nil(t, stored.VerifyToken)

	f.clock.Set(fixtureStart.Add(24*time.Hour + time.Minute))
	err := f.accounts.ConfirmEmail(ctx, &usecase.TokenInput{Email: "ana@mdr.example", Token: token})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	assert.Equal(t, domainerrors.KindInvalidToken, domainerrors.KindOf(err))
}

func TestLifecycle_ConfirmEmailAfterExpiry(t *testing.T) {
	f := newLifecycleFixture(t)

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	token := f.storedToken(t, account.ID, entity.TokenPurposeVerify).Value

	f.clock.Advance(24 * time.Hour)
	err := f.accounts.ConfirmEmail(context.Background(), &usecase.TokenInput{Email: "ana@mdr.example", Token: token})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	stored, _ := f.store.account(account.ID)
	assert.False(t, stored.IsVerified)
	assert.NotNil(t, stored.VerifyToken)
}

func TestLifecycle_CompleteAccountSetup(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.provision(t, "dr.grey", "grey@mdr.example", entity.RoleDoctor)
	token := tokenFromLink(t, f.notifier.last().Link)

	require.NoError(t, f.accounts.CheckToken(ctx, &usecase.CheckTokenInput{
		Purpose: entity.TokenPurposeVerify,
		Email:   "grey@mdr.example",
		Token:   token,
	}))

	input := &usecase.SetPasswordInput{Email: "grey@mdr.example", Token: token, Password: freshPassword}
	require.NoError(t, f.accounts.CompleteAccountSetup(ctx, input))

	stored, _ := f.store.account(account.ID)
	assert.True(t, stored.IsVerified)
	assert.Nil(t, stored.VerifyToken)
	assert.True(t, f.hasher.Check(freshPassword, stored.PasswordHash))

	err := f.accounts.CompleteAccountSetup(ctx, input)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestLifecycle_CheckTokenDoesNotConsume(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	require.NoError(t, f.accounts.RequestPasswordReset(ctx, "ana@mdr.example"))
	token := f.storedToken(t, account.ID, entity.TokenPurposeReset).Value

	check := &usecase.CheckTokenInput{Purpose: entity.TokenPurposeReset, Email: "ana@mdr.example", Token: token}
	require.NoError(t, f.accounts.CheckToken(ctx, check))
	require.NoError(t, f.accounts.CheckToken(ctx, check))

	wrongPurpose := &usecase.CheckTokenInput{Purpose: entity.TokenPurposeDelete, Email: "ana@mdr.example", Token: token}
	assert.True(t, errors.Is(f.accounts.CheckToken(ctx, wrongPurpose), domainerrors.ErrInvalidToken))

	unknown := &usecase.CheckTokenInput{Purpose: "bogus", Email: "ana@mdr.example", Token: token}
	assert.True(t, errors.Is(f.accounts.CheckToken(ctx, unknown), domainerrors.ErrValidationFailed))

	assert.NotNil(t, f.storedToken(t, account.ID, entity.TokenPurposeReset))
}

func TestLifecycle_PasswordResetChangesCredential(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	require.NoError(t, f.accounts.RequestPasswordReset(ctx, "ana@mdr.example"))

	msg := f.notifier.last()
	assert.Equal(t, entity.LinkPurposePasswordReset, msg.Purpose)
	token := tokenFromLink(t, msg.Link)
	assert.Equal(t, fixtureStart.Add(time.Hour), f.storedToken(t, account.ID, entity.TokenPurposeReset).ExpiresAt)

	require.NoError(t, f.accounts.ResetPassword(ctx, &usecase.SetPasswordInput{
		Email:    "ana@mdr.example",
		Token:    token,
		Password: freshPassword,
	}))

	stored, _ := f.store.account(account.ID)
	assert.True(t, f.hasher.Check(freshPassword, stored.PasswordHash))
	assert.False(t, f.hasher.Check(patientPassword, stored.PasswordHash))
	assert.Nil(t, stored.ResetToken)
	// the verify token from registration is untouched by the reset flow
	assert.NotNil(t, stored.VerifyToken)

	err := f.accounts.ResetPassword(ctx, &usecase.SetPasswordInput{
		Email:    "ana@mdr.example",
		Token:    token,
		Password: "Another$Pass9",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestLifecycle_PasswordResetUnknownEmail(t *testing.T) {
	f := newLifecycleFixture(t)

	err := f.accounts.RequestPasswordReset(context.Background(), "ghost@mdr.example")

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	assert.Zero(t, f.notifier.count())
}

func TestLifecycle_SuccessiveResetsKeepOnlyLatest(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)

	require.NoError(t, f.accounts.RequestPasswordReset(ctx, "ana@mdr.example"))
	first := tokenFromLink(t, f.notifier.last().Link)
	f.clock.Advance(time.Minute)
	require.NoError(t, f.accounts.RequestPasswordReset(ctx, "ana@mdr.example"))
	second := tokenFromLink(t, f.notifier.last().Link)
	require.NotEqual(t, first, second)

	err := f.accounts.ResetPassword(ctx, &usecase.SetPasswordInput{Email: "ana@mdr.example", Token: first, Password: freshPassword})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	require.NoError(t, f.accounts.ResetPassword(ctx, &usecase.SetPasswordInput{Email: "ana@mdr.example", Token: second, Password: freshPassword}))
}

func TestLifecycle_ResetTokenExpiresAfterOneHour(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	require.NoError(t, f.accounts.RequestPasswordReset(ctx, "ana@mdr.example"))
	token := tokenFromLink(t, f.notifier.last().Link)

	f.clock.Advance(time.Hour)
	err := f.accounts.ResetPassword(ctx, &usecase.SetPasswordInput{Email: "ana@mdr.example", Token: token, Password: freshPassword})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestLifecycle_TwoPhaseDeletion(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	require.NoError(t, f.accounts.RequestAccountDeletion(ctx, account.ID))

	msg := f.notifier.last()
	assert.Equal(t, entity.LinkPurposeConfirmDeletion, msg.Purpose)
	assert.Contains(t, msg.Link, "/redirect-delete-account?")
	token := tokenFromLink(t, msg.Link)

	err := f.accounts.ConfirmAccountDeletion(ctx, &usecase.TokenInput{Email: "ana@mdr.example", Token: "forged"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	_, stillThere := f.store.account(account.ID)
	assert.True(t, stillThere)

	require.NoError(t, f.accounts.ConfirmAccountDeletion(ctx, &usecase.TokenInput{Email: "ana@mdr.example", Token: token}))

	_, err = f.accounts.GetAccount(ctx, account.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Equal(t, 1, f.store.deletionLogCount(account.ID))

	err = f.accounts.ConfirmAccountDeletion(ctx, &usecase.TokenInput{Email: "ana@mdr.example", Token: token})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	assert.Equal(t, 1, f.store.deletionLogCount(account.ID))
}

func TestLifecycle_TokenSlotsAreIndependent(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	verify := f.storedToken(t, account.ID, entity.TokenPurposeVerify).Value

	require.NoError(t, f.accounts.RequestPasswordReset(ctx, "ana@mdr.example"))
	require.NoError(t, f.accounts.RequestAccountDeletion(ctx, account.ID))

	require.NoError(t, f.accounts.ConfirmEmail(ctx, &usecase.TokenInput{Email: "ana@mdr.example", Token: verify}))

	stored, _ := f.store.account(account.ID)
	assert.Nil(t, stored.VerifyToken)
	assert.NotNil(t, stored.ResetToken)
	assert.NotNil(t, stored.DeleteToken)
}

func TestLifecycle_NotificationFailureRollsBack(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	f.notifier.err = errDispatch

	err := f.accounts.RequestPasswordReset(ctx, "ana@mdr.example")
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
	assert.Equal(t, domainerrors.KindNotificationFailure, domainerrors.KindOf(err))
	assert.Nil(t, f.storedToken(t, account.ID, entity.TokenPurposeReset))

	_, err = f.accounts.ProvisionAccount(ctx, &usecase.ProvisionAccountInput{
		Username: "dr.who",
		Email:    "who@mdr.example",
		Role:     entity.RoleDoctor,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationFailed))
	_, created := f.store.accountByEmail("who@mdr.example")
	assert.False(t, created)
}

func TestLifecycle_InactivateClearsResetTokenOnly(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	require.NoError(t, f.accounts.RequestPasswordReset(ctx, "ana@mdr.example"))

	require.NoError(t, f.accounts.InactivateAccount(ctx, account.ID))

	stored, _ := f.store.account(account.ID)
	assert.Nil(t, stored.ResetToken)
	assert.NotNil(t, stored.VerifyToken)
}

func TestLifecycle_AdminDeleteRecordsLog(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.provision(t, "clerk", "clerk@mdr.example", entity.RoleStaff)
	require.NoError(t, f.accounts.DeleteAccount(ctx, account.ID))
	assert.Equal(t, 1, f.store.deletionLogCount(account.ID))

	err := f.accounts.DeleteAccount(ctx, account.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Equal(t, 1, f.store.deletionLogCount(account.ID))
}

func TestLifecycle_UpdateAccountEmailTriggersReverification(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.provision(t, "dr.grey", "grey@mdr.example", entity.RoleDoctor)
	setup := tokenFromLink(t, f.notifier.last().Link)
	require.NoError(t, f.accounts.CompleteAccountSetup(ctx, &usecase.SetPasswordInput{
		Email: "grey@mdr.example", Token: setup, Password: freshPassword,
	}))

	newEmail := "meredith@mdr.example"
	updated, err := f.accounts.UpdateAccount(ctx, &usecase.UpdateAccountInput{ID: account.ID, Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, newEmail, updated.Email)
	assert.False(t, updated.IsVerified)

	stored, _ := f.store.account(account.ID)
	require.NotNil(t, stored.VerifyToken)
	assert.Equal(t, fixtureStart.Add(48*time.Hour), stored.VerifyToken.ExpiresAt)

	msg := f.notifier.last()
	assert.Equal(t, entity.LinkPurposeConfirmEmail, msg.Purpose)
	assert.Equal(t, newEmail, msg.To)

	logs := f.store.profileUpdateLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, []string{fieldEmail}, logs[0].ChangedFields)
	assert.Equal(t, account.ID, logs[0].AccountID)
}

func TestLifecycle_UpdateAccountPhoneKeepsVerification(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.provision(t, "dr.grey", "grey@mdr.example", entity.RoleDoctor)
	setup := tokenFromLink(t, f.notifier.last().Link)
	require.NoError(t, f.accounts.CompleteAccountSetup(ctx, &usecase.SetPasswordInput{
		Email: "grey@mdr.example", Token: setup, Password: freshPassword,
	}))
	sent := f.notifier.count()

	phone := "+351939999999"
	updated, err := f.accounts.UpdateAccount(ctx, &usecase.UpdateAccountInput{ID: account.ID, PhoneNumber: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.PhoneNumber)
	assert.True(t, updated.IsVerified)
	assert.Equal(t, sent, f.notifier.count())

	stored, _ := f.store.account(account.ID)
	assert.Nil(t, stored.VerifyToken)

	logs := f.store.profileUpdateLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, []string{fieldPhoneNumber}, logs[0].ChangedFields)
}

func TestLifecycle_UpdateAccountRules(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	doctor := f.provision(t, "dr.grey", "grey@mdr.example", entity.RoleDoctor)
	f.provision(t, "dr.yang", "yang@mdr.example", entity.RoleDoctor)
	patient := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)

	taken := "dr.yang"
	_, err := f.accounts.UpdateAccount(ctx, &usecase.UpdateAccountInput{ID: doctor.ID, Username: &taken})
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameInUse))

	patientRole := entity.RolePatient
	_, err = f.accounts.UpdateAccount(ctx, &usecase.UpdateAccountInput{ID: doctor.ID, Role: &patientRole})
	assert.True(t, errors.Is(err, domainerrors.ErrPatientSelfRegistrationOnly))

	staffRole := entity.RoleStaff
	_, err = f.accounts.UpdateAccount(ctx, &usecase.UpdateAccountInput{ID: patient.ID, Role: &staffRole})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	sent := f.notifier.count()
	updated, err := f.accounts.UpdateAccount(ctx, &usecase.UpdateAccountInput{ID: doctor.ID, Role: &staffRole})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, updated.Role)
	assert.Equal(t, sent, f.notifier.count())
}

func TestLifecycle_LoginIssuesAccessToken(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)

	output, err := f.accounts.Login(ctx, &usecase.LoginInput{Username: "ana", Password: patientPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, output.AccessToken)
	assert.Equal(t, int64(900), output.ExpiresIn)
	assert.Equal(t, account.ID, output.Account.ID)

	_, err = f.accounts.Login(ctx, &usecase.LoginInput{Username: "ana", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = f.accounts.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: patientPassword})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestLifecycle_ReadsDoNotMutate(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	before, _ := f.store.account(account.ID)

	byID, err := f.accounts.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	byName, err := f.accounts.GetAccountByUsername(ctx, "ana")
	require.NoError(t, err)
	all, err := f.accounts.ListAccounts(ctx)
	require.NoError(t, err)

	assert.Equal(t, account.ID, byID.ID)
	assert.Equal(t, account.ID, byName.ID)
	assert.Len(t, all, 1)

	after, _ := f.store.account(account.ID)
	assert.Equal(t, before, after)
}

func TestLifecycle_RequestEmailReverification(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	account := f.registerPatient(t, "ana", "ana@mdr.example", patientPassword)
	first := f.storedToken(t, account.ID, entity.TokenPurposeVerify).Value
	require.NoError(t, f.accounts.ConfirmEmail(ctx, &usecase.TokenInput{Email: "ana@mdr.example", Token: first}))

	require.NoError(t, f.accounts.RequestEmailReverification(ctx, account.ID))

	stored, _ := f.store.account(account.ID)
	assert.False(t, stored.IsVerified)
	require.NotNil(t, stored.VerifyToken)
	assert.Equal(t, fixtureStart.Add(48*time.Hour), stored.VerifyToken.ExpiresAt)

	f.clock.Advance(47 * time.Hour)
	require.NoError(t, f.accounts.ConfirmEmail(ctx, &usecase.TokenInput{Email: "ana@mdr.example", Token: stored.VerifyToken.Value}))
}
