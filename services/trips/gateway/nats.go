package gateway

import (
	"context"
	"fmt"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/constants"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// Publisher is the slice of the NATS client the gateway needs
type Publisher interface {
	PublishJSON(subject string, v interface{}) error
}

// TripGW publishes trip events over NATS
type TripGW struct {
	publisher Publisher
}

// NewTripGW creates a new trip gateway
func NewTripGW(publisher Publisher) *TripGW {
	return &TripGW{publisher: publisher}
}

// PublishTripMatched announces that a driver claimed a trip
func (g *TripGW) PublishTripMatched(ctx context.Context, event models.TripMatchedEvent) error {
	if err := g.publisher.PublishJSON(constants.SubjectTripMatched, event); err != nil {
		return fmt.Errorf("failed to publish trip matched event: %w", err)
	}

	logger.DebugCtx(ctx, "Published trip matched event",
		logger.String("trip_id", event.TripID),
		logger.String("driver_id", event.DriverID))
	return nil
}
