package trips

import (
	"context"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// TripGW publishes trip events to other services
type TripGW interface {
	PublishTripMatched(ctx context.Context, event models.TripMatchedEvent) error
}
