// Package handler contains the worker-side handlers consuming pushed events.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storehub/config"
	deliverycontext "storehub/internal/delivery/context"
	"storehub/internal/domain/constants"
	"storehub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler consumes store events pushed by Pub/Sub
type PushHandler struct {
	verifyPushAuth bool
	pushSender     service.PushSender
	alertTokens    []string
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	PushSender service.PushSender
	Logger     *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google push requests carry a signed token outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var alertTokens []string
	if params.Config.Notify != nil && params.Config.Notify.Enabled {
		alertTokens = params.Config.Notify.Tokens
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushSender:     params.PushSender,
		alertTokens:    alertTokens,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.StoreEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse store event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(c, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	h.processEvent(c.Request().Context(), reqLogger, &event)

	return c.NoContent(http.StatusOK)
}

// processEvent reacts to one store event. Processing is idempotent: events
// only fan out to logs and outbound notifications, so redelivery is harmless.
func (h *PushHandler) processEvent(ctx context.Context, logger *slog.Logger, event *service.StoreEvent) {
	switch event.Kind {
	case service.EventSaleCompleted:
		if event.Sale == nil {
			logger.Warn("[Worker] Sale event without summary", slog.String("store_id", event.StoreID))

			return
		}
		logger.Info("[Worker] Sale completed",
			slog.String("store_id", event.StoreID),
			slog.Float64("total", event.Sale.Total),
			slog.Int("lines", len(event.Sale.Items)),
			slog.String("payment_method", event.Sale.PaymentMethod),
		)

	case service.EventStockLow:
		names := make([]string, 0, len(event.LowStock))
		for _, p := range event.LowStock {
			names = append(names, p.Name)
			logger.Warn("[Worker] Stock low",
				slog.String("store_id", event.StoreID),
				slog.String("product_id", p.ID),
				slog.String("product", p.Name),
				slog.Float64("quantity", p.Quantity),
				slog.Float64("min_stock", p.MinStock),
			)
		}
		h.notifyOwner(ctx, logger,
			"Low stock alert",
			fmt.Sprintf("Running low on: %s", strings.Join(names, ", ")),
			map[string]string{"kind": event.Kind, "store_id": event.StoreID},
		)

	case service.EventReservationReminder:
		if event.Reservation == nil {
			logger.Warn("[Worker] Reminder event without reservation", slog.String("store_id", event.StoreID))

			return
		}
		logger.Info("[Worker] Reservation reminder",
			slog.String("store_id", event.StoreID),
			slog.String("reservation_id", event.Reservation.ID),
			slog.String("name", event.Reservation.Name),
			slog.String("time", event.Reservation.Time),
			slog.Int("people", event.Reservation.People),
		)
		h.notifyOwner(ctx, logger,
			"Upcoming reservation",
			fmt.Sprintf("%s at %s, party of %d", event.Reservation.Name, event.Reservation.Time, event.Reservation.People),
			map[string]string{"kind": event.Kind, "store_id": event.StoreID, "reservation_id": event.Reservation.ID},
		)

	default:
		logger.Warn("[Worker] Unknown event kind", slog.String("kind", event.Kind))
	}
}

// notifyOwner fans the alert out to the owner devices when a sender is configured
func (h *PushHandler) notifyOwner(ctx context.Context, logger *slog.Logger, title, body string, data map[string]string) {
	if h.pushSender == nil || len(h.alertTokens) == 0 {
		return
	}

	invalid, err := h.pushSender.SendAlertToAll(ctx, h.alertTokens, title, body, data)
	if err != nil {
		logger.Warn("[Worker] Failed to send push notification", slog.Any("error", err))

		return
	}
	if len(invalid) > 0 {
		logger.Warn("[Worker] Invalid device tokens", slog.Any("tokens", invalid))
	}
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(c echo.Context, pushMsg *PubSubMessage, event *service.StoreEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(c.Request().Context()); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	if _, err := idtoken.Validate(req.Context(), token, audience); err != nil {
		return errors.Wrap(err, "validate pubsub token")
	}

	return nil
}
