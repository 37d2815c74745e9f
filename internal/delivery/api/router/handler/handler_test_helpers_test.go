package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"mdr/config"
	apimiddleware "mdr/internal/delivery/api/middleware"
	"mdr/internal/delivery/api/response"
	"mdr/internal/delivery/api/validator"
	deliverycontext "mdr/internal/delivery/context"
	"mdr/internal/domain/entity"
	"mdr/internal/infra/notification"
	mockUC "mdr/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testFrontendURL = "https://portal.mdr.example"

type handlerFixture struct {
	echo      *echo.Echo
	accountUC *mockUC.MockAccountUsecase
	profileUC *mockUC.MockProfileUsecase
	accounts  *AccountHandler
	users     *UserHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	accountUC := mockUC.NewMockAccountUsecase(t)
	profileUC := mockUC.NewMockProfileUsecase(t)

	cfg := &config.Config{Links: &config.LinksConfig{
		APIBaseURL:  "https://mdr.example/api/account",
		FrontendURL: testFrontendURL,
	}}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return &handlerFixture{
		echo:      e,
		accountUC: accountUC,
		profileUC: profileUC,
		accounts: NewAccountHandler(AccountHandlerParams{
			AccountUC: accountUC,
			ProfileUC: profileUC,
			Links:     notification.NewLinkBuilder(cfg),
			Logger:    logger,
		}),
		users: NewUserHandler(UserHandlerParams{
			AccountUC: accountUC,
			Logger:    logger,
		}),
	}
}

// signedIn stands in for the auth middleware.
func signedIn(accountID uuid.UUID, role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetAccount(c, accountID, []string{role.String()})

			return next(c)
		}
	}
}

func (f *handlerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)

	return envelope.Error
}

func sampleAccount(role entity.Role) *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Username:     "ana",
		Role:         role,
		Email:        "ana@mdr.example",
		PhoneNumber:  "+351910000000",
		PasswordHash: "$2a$10$secret",
		VerifyToken:  &entity.PendingToken{Purpose: entity.TokenPurposeVerify, Value: "pending"},
	}
}
