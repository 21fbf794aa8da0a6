package routes

import (
	"context"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// RouteUC defines multi-stop route planning and the route lifecycle
type RouteUC interface {
	OptimizeMultiStopRoute(ctx context.Context, driverID string, orders []*models.TripRequest, current *models.Location) (*models.OptimizedRoute, error)
	OptimizeAssignedTrips(ctx context.Context, driverID string, tripIDs []string, current *models.Location) (*models.OptimizedRoute, error)
	GetActiveRoute(ctx context.Context, driverID string) (*models.OptimizedRoute, error)
	AcceptRoute(ctx context.Context, driverID, routeID string) (bool, error)
	StartRoute(ctx context.Context, driverID string) (bool, error)
	CompleteStop(ctx context.Context, driverID, stopID string) (*models.DeliveryStop, error)
	GetNextStop(ctx context.Context, driverID string) (*models.DeliveryStop, error)
	ClearRoute(ctx context.Context, driverID string) error
	UpdateDriverLocation(ctx context.Context, update models.LocationUpdate) error
}
