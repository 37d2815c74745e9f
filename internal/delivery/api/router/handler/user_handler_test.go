package handler

import (
	"net/http"
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

func TestUserHandler_ProvisionUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(f *handlerFixture)
		wantStatus int
		wantCode   string
	}{
		{
			name: "role matched case-insensitively",
			body: `{"username":"dr.grey","email":"grey@mdr.example","phone_number":"+351920000000","role":"doctor"}`,
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().ProvisionAccount(mock.Anything, &usecase.ProvisionAccountInput{
					Username:    "dr.grey",
					Email:       "grey@mdr.example",
					PhoneNumber: "+351920000000",
					Role:        entity.RoleDoctor,
				}).Return(sampleAccount(entity.RoleDoctor), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "patient role rejected by the usecase",
			body: `{"username":"ana","email":"ana@mdr.example","phone_number":"+351910000000","role":"Patient"}`,
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().ProvisionAccount(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrPatientSelfRegistrationOnly, "failed to provision account"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PATIENT_SELF_REGISTRATION_ONLY",
		},
		{
			name:       "unknown role",
			body:       `{"username":"bob","email":"bob@mdr.example","phone_number":"+351930000000","role":"Janitor"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "email in use",
			body: `{"username":"dr.grey","email":"grey@mdr.example","phone_number":"+351920000000","role":"Staff"}`,
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().ProvisionAccount(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrEmailInUse, "failed to provision account"))
			},
			wantStatus: http.StatusConflict,
			wantCode:   "EMAIL_IN_USE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.echo.POST("/users", f.users.ProvisionUser)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			rec := f.do(http.MethodPost, "/users", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestUserHandler_ListUsers(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.GET("/users", f.users.ListUsers)

	f.accountUC.EXPECT().ListAccounts(mock.Anything).
		Return([]*entity.Account{sampleAccount(entity.RoleAdmin), sampleAccount(entity.RoleStaff)}, nil)

	rec := f.do(http.MethodGet, "/users", "")

	require.Equal(t, http.StatusOK, rec.Code)
	views := decodeData[[]AccountView](t, rec)
	require.Len(t, views, 2)
	assert.Equal(t, "Admin", views[0].Role)
	assert.Equal(t, "Staff", views[1].Role)
}

func TestUserHandler_GetUser(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.GET("/users/:id", f.users.GetUser)

	rec := f.do(http.MethodGet, "/users/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeError(t, rec).Code)

	missing := uuid.New()
	f.accountUC.EXPECT().GetAccount(mock.Anything, missing).
		Return(nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to get account"))

	rec = f.do(http.MethodGet, "/users/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeError(t, rec).Code)
}

func TestUserHandler_GetUserByUsername(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.GET("/users/by-username/:username", f.users.GetUserByUsername)

	account := sampleAccount(entity.RoleDoctor)
	f.accountUC.EXPECT().GetAccountByUsername(mock.Anything, "ana").Return(account, nil)

	rec := f.do(http.MethodGet, "/users/by-username/ana", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, account.ID, decodeData[AccountView](t, rec).ID)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	f := newHandlerFixture(t)
	f.echo.PUT("/users/:id", f.users.UpdateUser)

	accountID := uuid.New()
	f.accountUC.EXPECT().
		UpdateAccount(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateAccountInput) bool {
			return in.ID == accountID &&
				in.Role != nil && *in.Role == entity.RoleStaff &&
				in.Email != nil && *in.Email == "ana.staff@mdr.example" &&
				in.Username == nil && in.PhoneNumber == nil
		})).
		Return(sampleAccount(entity.RoleStaff), nil)

	rec := f.do(http.MethodPut, "/users/"+accountID.String(), `{"role":"staff","email":"ana.staff@mdr.example"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_AccountActions(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name       string
		method     string
		target     string
		setupMock  func(f *handlerFixture)
		wantStatus int
	}{
		{
			name:   "inactivate",
			method: http.MethodPatch,
			target: "/users/" + accountID.String() + "/inactivate",
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().InactivateAccount(mock.Anything, accountID).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "reverify email",
			method: http.MethodPost,
			target: "/users/" + accountID.String() + "/reverify-email",
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().RequestEmailReverification(mock.Anything, accountID).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/users/" + accountID.String(),
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().DeleteAccount(mock.Anything, accountID).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "delete failure is a server error",
			method: http.MethodDelete,
			target: "/users/" + accountID.String(),
			setupMock: func(f *handlerFixture) {
				f.accountUC.EXPECT().DeleteAccount(mock.Anything, accountID).
					Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "delete account"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.echo.PATCH("/users/:id/inactivate", f.users.InactivateUser)
			f.echo.POST("/users/:id/reverify-email", f.users.ReverifyUserEmail)
			f.echo.DELETE("/users/:id", f.users.DeleteUser)
			tt.setupMock(f)

			rec := f.do(tt.method, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
