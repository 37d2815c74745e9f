package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"mdr/config"
	deliverycontext "mdr/internal/delivery/context"
	"mdr/internal/domain/constants"
	"mdr/internal/errors"
	"mdr/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator validates a Google-signed ID token for an audience
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler handles Pub/Sub push messages carrying account link mails
type PushHandler struct {
	verifyPushAuth bool
	push           config.PushConfig
	validate       tokenValidator
	logger         *slog.Logger
	mailer         *LinkMailer
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mailer *LinkMailer
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push subscriptions sign their requests
	verifyPushAuth := params.Config.Notification != nil &&
		params.Config.Notification.Provider == constants.NotificationProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var push config.PushConfig
	if params.Config.Notification != nil && params.Config.Notification.Push != nil {
		push = *params.Config.Notification.Push
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		push:           push,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		mailer:         params.Mailer,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	msg, err := pubsub.DecodeLinkMessage(pushMsg.Message.Data)
	if err != nil {
		// Acknowledge so a malformed message is not redelivered forever
		h.logger.Error("[Worker] Dropping undecodable link message",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	requestID := extractRequestID(ctx, pushMsg.Message.Attributes, msg.RequestID)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.mailer.Deliver(ctx, msg); err != nil {
		reqLogger.Error("[Worker] Failed to deliver link mail",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("purpose", msg.Purpose.String()),
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryableError(err)),
		)
		// 503 makes Pub/Sub retry, 200 drops the message
		if IsRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID picks the request_id from message attributes, the payload,
// the X-Request-Id header, or generates a new one
func extractRequestID(ctx context.Context, attributes map[string]string, payloadID string) string {
	if requestID := attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}

	if payloadID != "" {
		return payloadID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken verifies the OIDC token attached to Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, ok := strings.CutPrefix(authHeader, constants.BearerPrefix)
	if !ok || token == "" {
		return errors.New("invalid authorization header format")
	}

	// Without a configured audience the endpoint URL is expected
	audience := h.push.Audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if h.push.ServiceAccountEmail != "" {
		if email, _ := payload.Claims["email"].(string); email != h.push.ServiceAccountEmail {
			return errors.Errorf("unexpected service account: %s", email)
		}
	}

	return nil
}
