package usecase

import (
	"context"
	"fmt"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// transition loads the driver's route under its lock and applies change.
// A false from change leaves the stored route untouched.
func (uc *RouteUC) transition(
	ctx context.Context,
	driverID string,
	change func(route *models.OptimizedRoute) bool,
) (*models.OptimizedRoute, bool, error) {
	unlock := uc.lockDriver(driverID)
	defer unlock()

	route, err := uc.routeRepo.GetActiveRoute(ctx, driverID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get active route: %w", err)
	}
	if route == nil || !change(route) {
		return route, false, nil
	}

	route.UpdatedAt = uc.now().UTC()
	if err := uc.routeRepo.SaveActiveRoute(ctx, route); err != nil {
		return nil, false, fmt.Errorf("failed to save route: %w", err)
	}
	return route, true, nil
}

// AcceptRoute moves a pending route with the given id to accepted
func (uc *RouteUC) AcceptRoute(ctx context.Context, driverID, routeID string) (bool, error) {
	route, ok, err := uc.transition(ctx, driverID, func(route *models.OptimizedRoute) bool {
		if route.ID != routeID || route.Status != models.RouteStatusPending {
			return false
		}
		now := uc.now().UTC()
		route.Status = models.RouteStatusAccepted
		route.AcceptedAt = &now
		return true
	})
	if err != nil || !ok {
		return false, err
	}

	logger.InfoCtx(ctx, "Route accepted",
		logger.String("driver_id", driverID),
		logger.String("route_id", routeID))
	uc.publish(ctx, route, models.RouteEventAccepted, "")
	return true, nil
}

// StartRoute moves an accepted route to in_progress
func (uc *RouteUC) StartRoute(ctx context.Context, driverID string) (bool, error) {
	route, ok, err := uc.transition(ctx, driverID, func(route *models.OptimizedRoute) bool {
		if route.Status != models.RouteStatusAccepted {
			return false
		}
		now := uc.now().UTC()
		route.Status = models.RouteStatusInProgress
		route.StartedAt = &now
		return true
	})
	if err != nil || !ok {
		return false, err
	}

	logger.InfoCtx(ctx, "Route started",
		logger.String("driver_id", driverID),
		logger.String("route_id", route.ID))
	uc.publish(ctx, route, models.RouteEventStarted, "")
	return true, nil
}

// CompleteStop removes a stop from an in-progress route and returns it, or
// nil when the route is not in progress or has no such stop. Removing the
// last stop completes the route and frees the driver.
func (uc *RouteUC) CompleteStop(ctx context.Context, driverID, stopID string) (*models.DeliveryStop, error) {
	var completed models.DeliveryStop
	route, ok, err := uc.transition(ctx, driverID, func(route *models.OptimizedRoute) bool {
		if route.Status != models.RouteStatusInProgress {
			return false
		}
		idx := stopIndex(route.Stops, stopID)
		if idx < 0 {
			return false
		}
		completed = route.Stops[idx]
		route.Stops = append(route.Stops[:idx], route.Stops[idx+1:]...)
		if len(route.Stops) == 0 {
			now := uc.now().UTC()
			route.Status = models.RouteStatusCompleted
			route.CompletedAt = &now
		}
		return true
	})
	if err != nil || !ok {
		return nil, err
	}

	logger.InfoCtx(ctx, "Stop completed",
		logger.String("driver_id", driverID),
		logger.String("route_id", route.ID),
		logger.String("stop_id", stopID),
		logger.Int("remaining_stops", len(route.Stops)))
	uc.publish(ctx, route, models.RouteEventStopCompleted, stopID)

	if route.Status == models.RouteStatusCompleted {
		uc.finishRoute(ctx, route)
	}
	return &completed, nil
}

func (uc *RouteUC) finishRoute(ctx context.Context, route *models.OptimizedRoute) {
	logger.InfoCtx(ctx, "Route completed",
		logger.String("driver_id", route.DriverID),
		logger.String("route_id", route.ID))
	uc.publish(ctx, route, models.RouteEventCompleted, "")

	if uc.driverStatus == nil {
		return
	}
	if err := uc.driverStatus.UpdateDriverStatus(ctx, route.DriverID, models.DriverStatusAvailable); err != nil {
		logger.WarnCtx(ctx, "Failed to mark driver available after route",
			logger.String("driver_id", route.DriverID),
			logger.Err(err))
	}
}

func stopIndex(stops []models.DeliveryStop, stopID string) int {
	for i, s := range stops {
		if s.ID == stopID {
			return i
		}
	}
	return -1
}
