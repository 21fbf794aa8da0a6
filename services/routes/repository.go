package routes

import (
	"context"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// RouteRepo persists the single active route of each driver
type RouteRepo interface {
	// GetActiveRoute returns nil without error when the driver has no route
	GetActiveRoute(ctx context.Context, driverID string) (*models.OptimizedRoute, error)
	SaveActiveRoute(ctx context.Context, route *models.OptimizedRoute) error
	DeleteActiveRoute(ctx context.Context, driverID string) error
}

// LocationRepo stores drivers' last known positions
type LocationRepo interface {
	// GetDriverLocation returns nil without error when no position is known
	GetDriverLocation(ctx context.Context, driverID string) (*models.Location, error)
	SetDriverLocation(ctx context.Context, driverID string, location models.Location) error
}

// TripSource loads the orders a route is built from
type TripSource interface {
	GetTripsByIDs(ctx context.Context, tripIDs []string) ([]*models.TripRequest, error)
}

// DriverStatusUpdater flips the driver's working status
type DriverStatusUpdater interface {
	UpdateDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) error
}
