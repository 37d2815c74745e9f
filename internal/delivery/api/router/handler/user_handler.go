package handler

import (
	"log/slog"
	"net/http"

	"mdr/internal/delivery/api/response"
	"mdr/internal/domain/entity"
	"mdr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// UserHandler serves the administrator account management endpoints.
type UserHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// ProvisionUserRequest represents the request body for creating a staff account
type ProvisionUserRequest struct {
	Username    string `json:"username" validate:"required,max=64"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Role        string `json:"role" validate:"required,role"`
}

// UpdateUserRequest holds administrative changes. Omitted fields are kept.
type UpdateUserRequest struct {
	Username    *string `json:"username" validate:"omitempty,max=64"`
	Role        *string `json:"role" validate:"omitempty,role"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
}

// ProvisionUser creates a staff account and mails its setup link.
func (h *UserHandler) ProvisionUser(c echo.Context) error {
	var req ProvisionUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	role, _ := entity.ParseRole(req.Role)
	account, err := h.accountUC.ProvisionAccount(c.Request().Context(), &usecase.ProvisionAccountInput{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountView(account))
}

// ListUsers returns every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	accounts, err := h.accountUC.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountViews(accounts))
}

// GetUser returns one account by ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

// GetUserByUsername returns one account by its exact username.
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	account, err := h.accountUC.GetAccountByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

// UpdateUser applies administrative changes to an account.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdateAccountInput{
		ID:          accountID,
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	if req.Role != nil && *req.Role != "" {
		role, _ := entity.ParseRole(*req.Role)
		input.Role = &role
	}

	account, err := h.accountUC.UpdateAccount(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

// InactivateUser clears the account's pending password reset.
func (h *UserHandler) InactivateUser(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	if err := h.accountUC.InactivateAccount(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Account inactivated")
}

// ReverifyUserEmail sends the account through email re-verification.
func (h *UserHandler) ReverifyUserEmail(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	if err := h.accountUC.RequestEmailReverification(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Verification link sent")
}

// DeleteUser removes an account immediately.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
