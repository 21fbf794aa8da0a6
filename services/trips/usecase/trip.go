package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/utils"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/trips/compatibility"
)

// GetTrip returns a single trip
func (uc *TripUC) GetTrip(ctx context.Context, tripID string) (*models.TripRequest, error) {
	return uc.tripRepo.GetTrip(ctx, tripID)
}

// ListAvailableTrips returns open trips near the driver, nearest first, each
// annotated with whether the driver's trucks fit it
func (uc *TripUC) ListAvailableTrips(ctx context.Context, driverID string, location models.Location) ([]*models.AvailableTrip, error) {
	driver, err := uc.driverRepo.GetDriverProfile(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver: %w", err)
	}

	var prefixes []string
	if precision := utils.CoveringPrecision(location, uc.cfg.Trips.SearchRadiusKm, uc.cfg.Trips.GeohashPrecision); precision > 0 {
		prefixes = utils.CoveringPrefixes(location, precision)
	}

	pending, err := uc.tripRepo.ListPendingTrips(ctx, prefixes, uc.cfg.Trips.FeedLimit*feedOverscan)
	if err != nil {
		return nil, err
	}

	feed := make([]*models.AvailableTrip, 0, len(pending))
	for _, trip := range pending {
		lat, lng, ok := trip.Pickup.Coordinates()
		if !ok {
			continue
		}
		dist := utils.LocationDistanceKm(location, models.Location{Latitude: lat, Longitude: lng})
		if uc.cfg.Trips.SearchRadiusKm > 0 && dist > uc.cfg.Trips.SearchRadiusKm {
			continue
		}
		feed = append(feed, &models.AvailableTrip{
			Trip:               trip,
			DistanceToPickupKm: dist,
			IsCompatible:       compatibility.IsCompatible(trip.RequiredTruckType, driver.PreferredTruckTypes),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].DistanceToPickupKm < feed[j].DistanceToPickupKm
	})
	if limit := uc.cfg.Trips.FeedLimit; limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}

	return feed, nil
}

// CheckCompatibility compares the trip's required truck type with the
// driver's preferred types
func (uc *TripUC) CheckCompatibility(ctx context.Context, tripID, driverID string) (*models.CompatibilityReport, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	driver, err := uc.driverRepo.GetDriverProfile(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return buildReport(trip, driver), nil
}

func buildReport(trip *models.TripRequest, driver *models.DriverProfile) *models.CompatibilityReport {
	result := compatibility.Check(trip.RequiredTruckType, driver.PreferredTruckTypes)

	report := &models.CompatibilityReport{
		TripID:            trip.ID,
		DriverID:          driver.UserID,
		IsCompatible:      result.Compatible,
		RequiredTruckType: trip.RequiredTruckType,
		CategoryMiss:      result.CategoryMiss,
		DriverTruckTypes:  driver.PreferredTruckTypes,
		MaterialType:      trip.MaterialType,
	}
	if result.Category != compatibility.CategoryUnknown {
		report.MatchedCategory = result.Category.String()
	}
	if result.CategoryMiss {
		logger.Warn("Truck type has no category mapping",
			logger.String("trip_id", trip.ID),
			logger.String("required_truck_type", trip.RequiredTruckType))
	}
	return report
}
