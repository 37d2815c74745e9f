// Package handler contains the HTTP handlers for the account API.
package handler

import (
	"log/slog"
	"net/http"

	"mdr/internal/delivery/api/response"
	deliverycontext "mdr/internal/delivery/context"
	"mdr/internal/domain/entity"
	domainerrors "mdr/internal/domain/errors"
	"mdr/internal/domain/service"
	"mdr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Frontend pages the redirect endpoints forward the browser to.
const (
	frontendSetupPassword = "setup-password"
	frontendResetPassword = "reset-password"
	frontendConfirmEmail  = "confirm-email"
	frontendDeleteAccount = "delete-account"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	ProfileUC usecase.ProfileUsecase
	Links     service.LinkBuilder
	Logger    *slog.Logger
}

// AccountHandler serves the self-service account endpoints, including the
// targets of mailed links.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	profileUC usecase.ProfileUsecase
	links     service.LinkBuilder
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		profileUC: params.ProfileUC,
		links:     params.Links,
		logger:    params.Logger,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterPatientRequest represents the request body for patient self-registration
type RegisterPatientRequest struct {
	Username    string `json:"username" validate:"required,max=64"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// TokenQuery carries the email and token of a mailed link
type TokenQuery struct {
	Email string `query:"email" validate:"required,email"`
	Token string `query:"token" validate:"required"`
}

// SetPasswordRequest completes setup or reset with a new password
type SetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// PasswordResetRequest represents the request body for requesting a reset link
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest holds the patient's own changes. Omitted or empty fields are kept.
type UpdateProfileRequest struct {
	FirstName        *string `json:"first_name"`
	LastName         *string `json:"last_name"`
	Gender           *string `json:"gender"`
	Email            *string `json:"email" validate:"omitempty,email"`
	PhoneNumber      *string `json:"phone_number"`
	EmergencyContact *string `json:"emergency_contact"`
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLoginView(output))
}

// RegisterPatient handles patient self-registration.
func (h *AccountHandler) RegisterPatient(c echo.Context) error {
	var req RegisterPatientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.accountUC.RegisterPatient(c.Request().Context(), &usecase.RegisterPatientInput{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountView(account))
}

// SetupPasswordLanding is the target of the account setup mail. It checks the
// token and forwards the browser to the frontend password form.
func (h *AccountHandler) SetupPasswordLanding(c echo.Context) error {
	return h.checkAndRedirect(c, entity.TokenPurposeVerify, frontendSetupPassword)
}

// CompleteSetup sets the first password of a provisioned account.
func (h *AccountHandler) CompleteSetup(c echo.Context) error {
	var req SetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.CompleteAccountSetup(c.Request().Context(), setPasswordInput(&req)); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Account setup completed")
}

// RequestPasswordReset mails a reset link to the account with the given email.
func (h *AccountHandler) RequestPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Password reset link sent")
}

// ResetPasswordLanding is the target of the reset mail.
func (h *AccountHandler) ResetPasswordLanding(c echo.Context) error {
	return h.checkAndRedirect(c, entity.TokenPurposeReset, frontendResetPassword)
}

// ResetPassword sets a new password using a reset token.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req SetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.ResetPassword(c.Request().Context(), setPasswordInput(&req)); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Password has been reset")
}

// RedirectConfirmEmail forwards the confirmation mail link to the frontend.
func (h *AccountHandler) RedirectConfirmEmail(c echo.Context) error {
	return h.redirect(c, frontendConfirmEmail)
}

// ConfirmEmail marks the account email as verified.
func (h *AccountHandler) ConfirmEmail(c echo.Context) error {
	var query TokenQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	if err := h.accountUC.ConfirmEmail(c.Request().Context(), &usecase.TokenInput{Email: query.Email, Token: query.Token}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Email confirmed")
}

// RequestDeleteAccount mails a deletion confirmation link to the caller.
func (h *AccountHandler) RequestDeleteAccount(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	if err := h.accountUC.RequestAccountDeletion(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Deletion confirmation link sent")
}

// RedirectDeleteAccount forwards the deletion mail link to the frontend.
func (h *AccountHandler) RedirectDeleteAccount(c echo.Context) error {
	return h.redirect(c, frontendDeleteAccount)
}

// DeleteAccount permanently removes the account once the deletion token is presented.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	var query TokenQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	if err := h.accountUC.ConfirmAccountDeletion(c.Request().Context(), &usecase.TokenInput{Email: query.Email, Token: query.Token}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Account deleted")
}

// Me returns the authenticated account.
func (h *AccountHandler) Me(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

// GetProfile returns the caller's patient profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.profileUC.GetPatientProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

// UpdateProfile applies the caller's changes to their patient profile.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.profileUC.UpdatePatientProfile(c.Request().Context(), accountID, &usecase.UpdatePatientProfileInput{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Gender:           req.Gender,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account))
}

func (h *AccountHandler) checkAndRedirect(c echo.Context, purpose entity.TokenPurpose, page string) error {
	var query TokenQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	if err := h.accountUC.CheckToken(c.Request().Context(), &usecase.CheckTokenInput{
		Purpose: purpose,
		Email:   query.Email,
		Token:   query.Token,
	}); err != nil {
		return errors.WithStack(err)
	}

	return h.redirectTo(c, page, &query)
}

func (h *AccountHandler) redirect(c echo.Context, page string) error {
	var query TokenQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	return h.redirectTo(c, page, &query)
}

func (h *AccountHandler) redirectTo(c echo.Context, page string, query *TokenQuery) error {
	target, err := h.links.FrontendLink(page, query.Email, query.Token)
	if err != nil {
		return errors.Wrap(err, "failed to build frontend link")
	}

	return c.Redirect(http.StatusFound, target)
}

func setPasswordInput(req *SetPasswordRequest) *usecase.SetPasswordInput {
	return &usecase.SetPasswordInput{
		Email:    req.Email,
		Token:    req.Token,
		Password: req.Password,
	}
}

// bindAndValidate binds the request into target and runs the echo validator.
func bindAndValidate(c echo.Context, target any) error {
	if err := c.Bind(target); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("malformed request"), err.Error())
	}

	return errors.WithStack(c.Validate(target))
}
