package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/optimizer"
)

func newRouteID() string {
	return fmt.Sprintf("route-%s", uuid.NewString())
}

// OptimizeMultiStopRoute sequences the orders into a new pending route and
// replaces whatever route the driver had before
func (uc *RouteUC) OptimizeMultiStopRoute(ctx context.Context, driverID string, orders []*models.TripRequest, current *models.Location) (*models.OptimizedRoute, error) {
	if len(orders) < 2 {
		return nil, routes.ErrNotEnoughOrders
	}

	stops := optimizer.ProjectStops(orders)
	if len(stops) == 0 {
		return nil, routes.ErrNoRoutableStops
	}

	start := uc.resolveStart(ctx, driverID, current)
	sequenced := optimizer.Sequence(stops, start)

	now := uc.now().UTC()
	route := &models.OptimizedRoute{
		ID:           uc.newID(),
		DriverID:     driverID,
		Stops:        sequenced,
		RouteMetrics: optimizer.Estimate(sequenced, uc.params),
		Status:       models.RouteStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	unlock := uc.lockDriver(driverID)
	err := uc.routeRepo.SaveActiveRoute(ctx, route)
	unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to save route: %w", err)
	}

	logger.InfoCtx(ctx, "Route optimized",
		logger.String("driver_id", driverID),
		logger.String("route_id", route.ID),
		logger.Int("orders", len(orders)),
		logger.Int("stops", len(route.Stops)),
		logger.Float64("total_distance_km", route.TotalDistance),
		logger.Int("efficiency_score", route.EfficiencyScore))

	uc.publish(ctx, route, models.RouteEventOptimized, "")
	return route, nil
}

// OptimizeAssignedTrips loads the given trips and routes the ones that are
// assigned to the driver and still being worked
func (uc *RouteUC) OptimizeAssignedTrips(ctx context.Context, driverID string, tripIDs []string, current *models.Location) (*models.OptimizedRoute, error) {
	if len(tripIDs) < 2 {
		return nil, routes.ErrNotEnoughOrders
	}

	trips, err := uc.tripSource.GetTripsByIDs(ctx, tripIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load trips: %w", err)
	}

	orders := make([]*models.TripRequest, 0, len(trips))
	for _, trip := range trips {
		if !assignedTo(trip, driverID) {
			logger.DebugCtx(ctx, "Skipping trip not assigned to driver",
				logger.String("trip_id", trip.ID),
				logger.String("driver_id", driverID),
				logger.String("status", string(trip.Status)))
			continue
		}
		orders = append(orders, trip)
	}

	return uc.OptimizeMultiStopRoute(ctx, driverID, orders, current)
}

func assignedTo(trip *models.TripRequest, driverID string) bool {
	if trip.AssignedDriverID == nil || *trip.AssignedDriverID != driverID {
		return false
	}
	return trip.Status == models.TripStatusMatched || trip.Status == models.TripStatusInTransit
}

// resolveStart prefers the explicit position, then the last reported one.
// Nil lets the sequencer start at the first stop.
func (uc *RouteUC) resolveStart(ctx context.Context, driverID string, current *models.Location) *models.Location {
	if current != nil {
		return current
	}
	if uc.locationRepo == nil {
		return nil
	}

	loc, err := uc.locationRepo.GetDriverLocation(ctx, driverID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read driver location, routing from first stop",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return nil
	}
	return loc
}

// GetActiveRoute returns the driver's route or nil when there is none
func (uc *RouteUC) GetActiveRoute(ctx context.Context, driverID string) (*models.OptimizedRoute, error) {
	route, err := uc.routeRepo.GetActiveRoute(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active route: %w", err)
	}
	return route, nil
}

// GetNextStop returns the first remaining stop or nil
func (uc *RouteUC) GetNextStop(ctx context.Context, driverID string) (*models.DeliveryStop, error) {
	route, err := uc.GetActiveRoute(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return route.NextStop(), nil
}

// ClearRoute drops the driver's route. Clearing with no route is a no-op.
func (uc *RouteUC) ClearRoute(ctx context.Context, driverID string) error {
	unlock := uc.lockDriver(driverID)
	defer unlock()

	route, err := uc.routeRepo.GetActiveRoute(ctx, driverID)
	if err != nil {
		return fmt.Errorf("failed to get active route: %w", err)
	}
	if route == nil {
		return nil
	}

	if err := uc.routeRepo.DeleteActiveRoute(ctx, driverID); err != nil {
		return fmt.Errorf("failed to clear route: %w", err)
	}

	logger.InfoCtx(ctx, "Route cleared",
		logger.String("driver_id", driverID),
		logger.String("route_id", route.ID))

	uc.publish(ctx, route, models.RouteEventCleared, "")
	return nil
}

// UpdateDriverLocation records the driver's latest position
func (uc *RouteUC) UpdateDriverLocation(ctx context.Context, update models.LocationUpdate) error {
	if update.DriverID == "" {
		return fmt.Errorf("driver id is required")
	}

	loc := update.Location
	if loc.Timestamp.IsZero() {
		loc.Timestamp = update.CreatedAt
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = uc.now().UTC()
	}

	if err := uc.locationRepo.SetDriverLocation(ctx, update.DriverID, loc); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	return nil
}

func (uc *RouteUC) publish(ctx context.Context, route *models.OptimizedRoute, eventType models.RouteEventType, stopID string) {
	if uc.routeGW == nil {
		return
	}

	event := models.RouteEvent{
		Type:           eventType,
		RouteID:        route.ID,
		DriverID:       route.DriverID,
		Status:         route.Status,
		StopID:         stopID,
		RemainingStops: len(route.Stops),
		OccurredAt:     uc.now().UTC(),
	}
	if err := uc.routeGW.PublishRouteEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish route event",
			logger.String("route_id", route.ID),
			logger.String("event", string(eventType)),
			logger.Err(err))
	}
}
