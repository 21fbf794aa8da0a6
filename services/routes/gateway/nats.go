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

var routeSubjects = map[models.RouteEventType]string{
	models.RouteEventOptimized:     constants.SubjectRouteOptimized,
	models.RouteEventAccepted:      constants.SubjectRouteAccepted,
	models.RouteEventStarted:       constants.SubjectRouteStarted,
	models.RouteEventStopCompleted: constants.SubjectRouteStopCompleted,
	models.RouteEventCompleted:     constants.SubjectRouteCompleted,
	models.RouteEventCleared:       constants.SubjectRouteCleared,
}

// RouteGW publishes route lifecycle events over NATS
type RouteGW struct {
	publisher Publisher
}

// NewRouteGW creates a new route gateway
func NewRouteGW(publisher Publisher) *RouteGW {
	return &RouteGW{publisher: publisher}
}

// PublishRouteEvent sends the event on the subject of its type
func (g *RouteGW) PublishRouteEvent(ctx context.Context, event models.RouteEvent) error {
	subject, ok := routeSubjects[event.Type]
	if !ok {
		return fmt.Errorf("unknown route event type %q", event.Type)
	}

	if err := g.publisher.PublishJSON(subject, event); err != nil {
		return fmt.Errorf("failed to publish route event on %s: %w", subject, err)
	}

	logger.DebugCtx(ctx, "Published route event",
		logger.String("subject", subject),
		logger.String("route_id", event.RouteID))
	return nil
}
