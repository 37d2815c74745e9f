package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mdr/internal/delivery/context"
	"mdr/internal/domain/entity"
	"mdr/internal/domain/service"
	mockSvc "mdr/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	accountID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockSvc.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("broken").Return(nil, errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{
					AccountID: accountID,
					Roles:     []string{entity.RoleAdmin.String()},
				}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}
			mw := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, mw.Authenticate(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusNoContent {
				gotID, ok := deliverycontext.GetAccountID(c)
				assert.True(t, ok)
				assert.Equal(t, accountID, gotID)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	mw := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	tests := []struct {
		name       string
		roles      []string
		wantStatus int
	}{
		{name: "no roles on context", wantStatus: http.StatusForbidden},
		{name: "other role", roles: []string{"Patient"}, wantStatus: http.StatusForbidden},
		{name: "matching role", roles: []string{"Doctor"}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.roles != nil {
				deliverycontext.SetAccount(c, uuid.New(), tt.roles)
			}

			handler := mw.RequireRole(entity.RoleAdmin, entity.RoleDoctor)(okHandler)

			assert.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
