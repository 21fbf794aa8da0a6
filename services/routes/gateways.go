package routes

import (
	"context"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// RouteGW publishes route lifecycle events
type RouteGW interface {
	PublishRouteEvent(ctx context.Context, event models.RouteEvent) error
}
