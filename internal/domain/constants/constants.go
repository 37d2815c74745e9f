// Package constants holds values shared by configuration and infrastructure wiring.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Notification providers.
const (
	NotificationProviderLog      = "log"
	NotificationProviderSMTP     = "smtp"
	NotificationProviderLocal    = "local"
	NotificationProviderGoogle   = "google"
	NotificationProviderRabbitMQ = "rabbitmq"
)

// HTTP header names.
const (
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)
