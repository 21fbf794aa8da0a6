package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/constants"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes"
	"github.com/nats-io/nats.go"
)

// Subscriber is the slice of the NATS client the handler needs
type Subscriber interface {
	Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error)
}

// LocationHandler feeds driver location updates into the route use case
type LocationHandler struct {
	routeUC    routes.RouteUC
	natsClient Subscriber
	subs       []*nats.Subscription
}

// NewLocationHandler creates a new location NATS handler
func NewLocationHandler(routeUC routes.RouteUC, client Subscriber) *LocationHandler {
	return &LocationHandler{
		routeUC:    routeUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers subscribes to driver location updates
func (h *LocationHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectLocationUpdate, func(msg *nats.Msg) {
		if err := h.handleLocationUpdate(context.Background(), msg.Data); err != nil {
			logger.Error("Error handling location update event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to location updates: %w", err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("Subscribed to location updates", logger.String("subject", constants.SubjectLocationUpdate))
	return nil
}

// Close drops every subscription
func (h *LocationHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.String("subject", sub.Subject), logger.Err(err))
		}
	}
	h.subs = h.subs[:0]
}

func (h *LocationHandler) handleLocationUpdate(ctx context.Context, data []byte) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return fmt.Errorf("failed to unmarshal location update: %w", err)
	}

	logger.DebugCtx(ctx, "Received location update",
		logger.String("driver_id", update.DriverID),
		logger.Float64("latitude", update.Location.Latitude),
		logger.Float64("longitude", update.Location.Longitude))

	if !update.Location.Valid() {
		return fmt.Errorf("location update for driver %s is out of range", update.DriverID)
	}

	return h.routeUC.UpdateDriverLocation(ctx, update)
}
