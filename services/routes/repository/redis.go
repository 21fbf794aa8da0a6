package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/constants"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/database"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// RouteRepo keeps active routes and driver locations in Redis
type RouteRepo struct {
	redisClient *database.RedisClient
	routeTTL    time.Duration
}

// NewRouteRepo creates a new route repository. A zero routeTTL keeps routes
// until they are cleared or replaced.
func NewRouteRepo(redisClient *database.RedisClient, routeTTL time.Duration) *RouteRepo {
	return &RouteRepo{
		redisClient: redisClient,
		routeTTL:    routeTTL,
	}
}

// GetActiveRoute loads the driver's route snapshot
func (r *RouteRepo) GetActiveRoute(ctx context.Context, driverID string) (*models.OptimizedRoute, error) {
	key := fmt.Sprintf(constants.KeyDriverRoute, driverID)

	raw, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active route: %w", err)
	}

	var route models.OptimizedRoute
	if err := json.Unmarshal([]byte(raw), &route); err != nil {
		return nil, fmt.Errorf("failed to decode active route: %w", err)
	}
	return &route, nil
}

// SaveActiveRoute writes the whole route, replacing any previous one
func (r *RouteRepo) SaveActiveRoute(ctx context.Context, route *models.OptimizedRoute) error {
	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to encode active route: %w", err)
	}

	key := fmt.Sprintf(constants.KeyDriverRoute, route.DriverID)
	if err := r.redisClient.Set(ctx, key, data, r.routeTTL); err != nil {
		return fmt.Errorf("failed to save active route: %w", err)
	}
	return nil
}

// DeleteActiveRoute removes the driver's route. Missing routes are not an error.
func (r *RouteRepo) DeleteActiveRoute(ctx context.Context, driverID string) error {
	key := fmt.Sprintf(constants.KeyDriverRoute, driverID)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete active route: %w", err)
	}
	return nil
}

// GetDriverLocation reads the driver:location hash
func (r *RouteRepo) GetDriverLocation(ctx context.Context, driverID string) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	fields, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(fields[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude for driver %s: %w", driverID, err)
	}
	lng, err := strconv.ParseFloat(fields[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude for driver %s: %w", driverID, err)
	}

	location := &models.Location{Latitude: lat, Longitude: lng}
	if ts, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64); err == nil {
		location.Timestamp = time.Unix(ts, 0).UTC()
	}
	return location, nil
}

// SetDriverLocation overwrites the driver:location hash
func (r *RouteRepo) SetDriverLocation(ctx context.Context, driverID string, location models.Location) error {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	ts := location.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	err := r.redisClient.HSet(ctx, key, map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(ts.Unix(), 10),
	})
	if err != nil {
		return fmt.Errorf("failed to set driver location: %w", err)
	}
	return nil
}
