package pubsub

import (
	"context"
	"log/slog"

	"mdr/config"
	"mdr/internal/domain/constants"
	"mdr/internal/domain/service"
	"mdr/internal/infra/notification"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DispatcherParams holds dependencies for NotificationDispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationDispatcher creates a NotificationDispatcher based on configuration
func NewNotificationDispatcher(params DispatcherParams) (service.NotificationDispatcher, error) {
	cfg := params.Config.Notification
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.NotificationProviderLog {
		logger.Info("Notification provider not configured, links are only logged")

		return notification.NewLogDispatcher(logger), nil
	}

	var dispatcher service.NotificationDispatcher
	var err error

	switch cfg.Provider {
	case constants.NotificationProviderSMTP:
		sender, err := notification.NewSMTPSender(params.Config, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using direct SMTP notification dispatcher",
			slog.String("host", params.Config.SMTP.Host),
		)

		dispatcher = notification.NewMailDispatcher(sender, logger)

	case constants.NotificationProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for link messages",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		dispatcher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.NotificationProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		dispatcher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.NotificationProviderRabbitMQ:
		if cfg.RabbitMQ == nil || cfg.RabbitMQ.URL == "" || cfg.RabbitMQ.Queue == "" {
			return nil, errors.New("rabbitmq url and queue are required for rabbitmq provider")
		}

		dispatcher, err = NewRabbitMQPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown notification provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close dispatcher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing NotificationDispatcher")

			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// Module provides the notification dispatcher FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationDispatcher),
)
