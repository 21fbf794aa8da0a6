package trips

import (
	"context"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// TripUC defines the driver facing trip operations
type TripUC interface {
	GetTrip(ctx context.Context, tripID string) (*models.TripRequest, error)
	ListAvailableTrips(ctx context.Context, driverID string, location models.Location) ([]*models.AvailableTrip, error)
	CheckCompatibility(ctx context.Context, tripID, driverID string) (*models.CompatibilityReport, error)
	ClaimTrip(ctx context.Context, tripID, driverID string) (*models.ClaimResult, error)
}
