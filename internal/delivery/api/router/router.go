// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mdr/internal/delivery/api/middleware"
	"mdr/internal/delivery/api/router/handler"
	"mdr/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authenticated := r.authMiddleware.Authenticate
	patientOnly := r.authMiddleware.RequireRole(entity.RolePatient)

	// Account routes. Link targets are public, self-service routes need a patient login.
	accountGroup := e.Group("/api/account")
	{
		accountGroup.POST("/login", r.accountHandler.Login)
		accountGroup.POST("/register-patient", r.accountHandler.RegisterPatient)
		accountGroup.GET("/setup-password", r.accountHandler.SetupPasswordLanding)
		accountGroup.POST("/setup-password", r.accountHandler.CompleteSetup)
		accountGroup.POST("/request-password-reset", r.accountHandler.RequestPasswordReset)
		accountGroup.GET("/reset-password", r.accountHandler.ResetPasswordLanding)
		accountGroup.POST("/reset-password", r.accountHandler.ResetPassword)
		accountGroup.GET("/redirect-confirm-email", r.accountHandler.RedirectConfirmEmail)
		accountGroup.GET("/confirm-email", r.accountHandler.ConfirmEmail)
		accountGroup.GET("/redirect-delete-account", r.accountHandler.RedirectDeleteAccount)
		accountGroup.GET("/delete-account", r.accountHandler.DeleteAccount)

		accountGroup.GET("/me", r.accountHandler.Me, authenticated)
		accountGroup.GET("/request-delete-account", r.accountHandler.RequestDeleteAccount, authenticated, patientOnly)
		accountGroup.GET("/profile", r.accountHandler.GetProfile, authenticated, patientOnly)
		accountGroup.PUT("/update-profile", r.accountHandler.UpdateProfile, authenticated, patientOnly)
	}

	// Administrator account management
	usersGroup := e.Group("/api/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	usersGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		usersGroup.POST("", r.userHandler.ProvisionUser)
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/by-username/:username", r.userHandler.GetUserByUsername)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.PATCH("/:id/inactivate", r.userHandler.InactivateUser)
		usersGroup.POST("/:id/reverify-email", r.userHandler.ReverifyUserEmail)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
