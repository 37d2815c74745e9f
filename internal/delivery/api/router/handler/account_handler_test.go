package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountHandler_Login(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.POST("/login", f.accounts.Login)

	account := sampleAccount(entity.RoleDoctor)
	f.accountUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "ana", Password: "Kettle#Plum42"}).
		Return(&usecase.LoginOutput{AccessToken: "signed", ExpiresIn: 900, Account: account}, nil)

	rec := f.do(http.MethodPost, "/login", `{"username":"ana","password":"Kettle#Plum42"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeData[LoginView](t, rec)
	assert.Equal(t, "signed", view.AccessToken)
	assert.Equal(t, "Bearer", view.TokenType)
	assert.Equal(t, int64(900), view.ExpiresIn)
	assert.Equal(t, account.ID, view.Account.ID)
	assert.NotContains(t, rec.Body.String(), "secret")
	assert.NotContains(t, rec.Body.String(), "pending")
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.POST("/login", f.accounts.Login)

	f.accountUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "failed to login"))

	rec := f.do(http.MethodPost, "/login", `{"username":"ana","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Code)
}

func TestAccountHandler_RegisterPatient(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(f *handlerFixture)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"username":"ana","email":"ana@mdr.example","phone_number":"+351910000000","password":"Kettle#Plum42"}`,
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().RegisterPatient(mock.Anything, &usecase.RegisterPatientInput{
					Username:    "ana",
					Email:       "ana@mdr.example",
					PhoneNumber: "+351910000000",
					Password:    "Kettle#Plum42",
				}).Return(sampleAccount(entity.RolePatient), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "username taken",
			body: `{"username":"ana","email":"ana@mdr.example","phone_number":"+351910000000","password":"Kettle#Plum42"}`,
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().RegisterPatient(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrUsernameInUse, "failed to register patient"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   "USERNAME_IN_USE",
		},
		{
			name: "no matching patient profile",
			body: `{"username":"ana","email":"ana@mdr.example","phone_number":"+351910000000","password":"Kettle#Plum42"}`,
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().RegisterPatient(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrPatientProfileNotFound, "failed to register patient"))
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "PATIENT_PROFILE_NOT_FOUND",
		},
		{
			name:       "invalid email never reaches the usecase",
			body:       `{"username":"ana","email":"ana","phone_number":"+351910000000","password":"Kettle#Plum42"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.echo.POST("/register-patient", f.accounts.RegisterPatient)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			rec := f.do(http.MethodPost, "/register-patient", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestAccountHandler_SetupPasswordLanding_RedirectsWhenTokenValid(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.GET("/setup-password", f.accounts.SetupPasswordLanding)

	f.accountUC.EXPECT().CheckToken(mock.Anything, &usecase.CheckTokenInput{
		Purpose: entity.TokenPurposeVerify,
		Email:   "grey+staff@mdr.example",
		Token:   "tok/en=",
	}).Return(nil)

	query := url.Values{"email": {"grey+staff@mdr.example"}, "token": {"tok/en="}}
	rec := f.do(http.MethodGet, "/setup-password?"+query.Encode(), "")

	require.Equal(t, http.StatusFound, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "portal.mdr.example", location.Host)
	assert.Equal(t, "/setup-password", location.Path)
	assert.Equal(t, "grey+staff@mdr.example", location.Query().Get("email"))
	assert.Equal(t, "tok/en=", location.Query().Get("token"))
}

func TestAccountHandler_ResetPasswordLanding_RejectsInvalidToken(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.GET("/reset-password", f.accounts.ResetPasswordLanding)

	f.accountUC.EXPECT().CheckToken(mock.Anything, mock.MatchedBy(func(in *usecase.CheckTokenInput) bool {
		return in.Purpose == entity.TokenPurposeReset
	})).Return(errors.Wrap(domainerrors.ErrInvalidToken, "failed to check token"))

	rec := f.do(http.MethodGet, "/reset-password?email=ana%40mdr.example&token=stale", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec).Code)
}

func TestAccountHandler_RedirectConfirmEmail_RequiresTokenQuery(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.GET("/redirect-confirm-email", f.accounts.RedirectConfirmEmail)

	rec := f.do(http.MethodGet, "/redirect-confirm-email?email=ana%40mdr.example", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/redirect-confirm-email?email=ana%40mdr.example&token=abc", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), testFrontendURL+"/confirm-email?")
}

func TestAccountHandler_TokenFlows(t *testing.T) {
	tokenInput := &usecase.TokenInput{Email: "ana@mdr.example", Token: "abc"}
	passwordInput := &usecase.SetPasswordInput{Email: "ana@mdr.example", Token: "abc", Password: "Orchid&Lamp77"}
	passwordBody := `{"email":"ana@mdr.example","token":"abc","password":"Orchid&Lamp77"}`

	tests := []struct {
		name      string
		method    string
		target    string
		body      string
		setupMock func(f *handlerFixture)
	}{
		{
			name:   "confirm email",
			method: http.MethodGet,
			target: "/confirm-email?email=ana%40mdr.example&token=abc",
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().ConfirmEmail(mock.Anything, tokenInput).Return(nil)
			},
		},
		{
			name:   "confirm deletion",
			method: http.MethodGet,
			target: "/delete-account?email=ana%40mdr.example&token=abc",
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().ConfirmAccountDeletion(mock.Anything, tokenInput).Return(nil)
			},
		},
		{
			name:   "complete setup",
			method: http.MethodPost,
			target: "/setup-password",
			body:   passwordBody,
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().CompleteAccountSetup(mock.Anything, passwordInput).Return(nil)
			},
		},
		{
			name:   "reset password",
			method: http.MethodPost,
			target: "/reset-password",
			body:   passwordBody,
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().ResetPassword(mock.Anything, passwordInput).Return(nil)
			},
		},
		{
			name:   "request reset",
			method: http.MethodPost,
			target: "/request-password-reset",
			body:   `{"email":"ana@mdr.example"}`,
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().RequestPasswordReset(mock.Anything, "ana@mdr.example").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.echo.GET("/confirm-email", f.accounts.ConfirmEmail)
			f.echo.GET("/delete-account", f.accounts.DeleteAccount)
			f.echo.POST("/setup-password", f.accounts.CompleteSetup)
			f.echo.POST("/reset-password", f.accounts.ResetPassword)
			f.echo.POST("/request-password-reset", f.accounts.RequestPasswordReset)
			tt.setupMock(f)

			rec := f.do(tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, decodeData[map[string]string](t, rec)["message"])
		})
	}
}

func TestAccountHandler_RequestDeleteAccount_UsesCallerID(t *testing.T) {
	f := newHandlerFixture(t)
	callerID := uuid.New()
	f.echo.GET("/request-delete-account", f.accounts.RequestDeleteAccount, signedIn(callerID, entity.RolePatient))

	f.accountUC.EXPECT().RequestAccountDeletion(mock.Anything, callerID).Return(nil)

	rec := f.do(http.MethodGet, "/request-delete-account", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_RequestDeleteAccount_WithoutLogin(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.GET("/request-delete-account", f.accounts.RequestDeleteAccount)

	rec := f.do(http.MethodGet, "/request-delete-account", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccountHandler_UpdateProfile(t *testing.T) {
	f := newHandlerFixture(t)
	callerID := uuid.New()
	f.echo.PUT("/update-profile", f.accounts.UpdateProfile, signedIn(callerID, entity.RolePatient))

	updated := sampleAccount(entity.RolePatient)
	updated.Patient = &entity.Patient{ID: uuid.New(), FirstName: "Ana Maria", LastName: "Silva"}

	f.profileUC.EXPECT().
		UpdatePatientProfile(mock.Anything, callerID, mock.MatchedBy(func(in *usecase.UpdatePatientProfileInput) bool {
			return in.FirstName != nil && *in.FirstName == "Ana Maria" &&
				in.Email == nil && in.LastName == nil
		})).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ *usecase.UpdatePatientProfileInput) (*entity.Account, error) {
			return updated, nil
		})

	rec := f.do(http.MethodPut, "/update-profile", `{"first_name":"Ana Maria"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeData[AccountView](t, rec)
	require.NotNil(t, view.Patient)
	assert.Equal(t, "Ana Maria", view.Patient.FirstName)
}

func TestAccountHandler_UpdateProfile_RejectsInvalidEmail(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.PUT("/update-profile", f.accounts.UpdateProfile, signedIn(uuid.New(), entity.RolePatient))

	rec := f.do(http.MethodPut, "/update-profile", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestAccountHandler_GetProfile_StaffForbidden(t *testing.T) {
	f := newHandlerFixture(t)
	callerID := uuid.New()
	f.echo.GET("/profile", f.accounts.GetProfile, signedIn(callerID, entity.RolePatient))

	f.profileUC.EXPECT().GetPatientProfile(mock.Anything, callerID).
		Return(nil, errors.Wrap(domainerrors.ErrForbidden, "account has no patient profile"))

	rec := f.do(http.MethodGet, "/profile", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, decodeError(t, rec).Details)
}
