package usecase

import (
	"context"
	"fmt"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/logger"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// ClaimTrip tries to assign the trip to the driver. Approval is checked
// first, then truck compatibility, then the store performs the conditional
// write. Losing the race is an outcome, not an error.
func (uc *TripUC) ClaimTrip(ctx context.Context, tripID, driverID string) (*models.ClaimResult, error) {
	result := &models.ClaimResult{TripID: tripID, DriverID: driverID}

	driver, err := uc.driverRepo.GetDriverProfile(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load driver: %w", err)
	}
	if !driver.CanClaim() {
		result.Outcome = models.ClaimOutcomeNotApproved
		logger.InfoCtx(ctx, "Claim rejected, driver not approved",
			logger.String("trip_id", tripID),
			logger.String("driver_id", driverID),
			logger.String("approval_status", string(driver.ApprovalStatus)))
		return result, nil
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip: %w", err)
	}

	report := buildReport(trip, driver)
	if !report.IsCompatible {
		result.Outcome = models.ClaimOutcomeIncompatible
		result.Compatibility = report
		logger.InfoCtx(ctx, "Claim rejected, truck type mismatch",
			logger.String("trip_id", tripID),
			logger.String("driver_id", driverID),
			logger.String("required_truck_type", report.RequiredTruckType),
			logger.Strings("driver_truck_types", report.DriverTruckTypes))
		return result, nil
	}

	matchedAt := uc.now().UTC()
	claimed, err := uc.tripRepo.ClaimTrip(ctx, tripID, driverID, matchedAt)
	if err != nil {
		return nil, err
	}
	if !claimed {
		result.Outcome = models.ClaimOutcomeAlreadyTaken
		logger.InfoCtx(ctx, "Claim lost, trip already taken",
			logger.String("trip_id", tripID),
			logger.String("driver_id", driverID))
		return result, nil
	}

	result.Outcome = models.ClaimOutcomeClaimed
	result.MatchedAt = &matchedAt

	logger.InfoCtx(ctx, "Trip claimed",
		logger.String("trip_id", tripID),
		logger.String("driver_id", driverID))

	if uc.tripGW != nil {
		event := models.TripMatchedEvent{TripID: tripID, DriverID: driverID, MatchedAt: matchedAt}
		if err := uc.tripGW.PublishTripMatched(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish trip matched event",
				logger.String("trip_id", tripID),
				logger.String("driver_id", driverID),
				logger.Err(err))
		}
	}

	return result, nil
}
