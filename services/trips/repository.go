package trips

import (
	"context"
	"time"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// TripRepo defines data access for delivery trips
type TripRepo interface {
	GetTrip(ctx context.Context, tripID string) (*models.TripRequest, error)
	GetTripsByIDs(ctx context.Context, tripIDs []string) ([]*models.TripRequest, error)
	// ListPendingTrips returns open trips whose pickup geohash starts with one
	// of prefixes. An empty prefix list disables the geo prefilter.
	ListPendingTrips(ctx context.Context, prefixes []string, limit int) ([]*models.TripRequest, error)
	// ClaimTrip assigns the trip to the driver only if it is still pending and
	// unassigned, and marks the driver busy in the same unit of work. It
	// returns false when another driver got there first.
	ClaimTrip(ctx context.Context, tripID, driverID string, matchedAt time.Time) (bool, error)
}

// DriverRepo defines data access for driver profiles
type DriverRepo interface {
	GetDriverProfile(ctx context.Context, driverID string) (*models.DriverProfile, error)
	UpdateDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) error
}
