package optimizer_test

import (
	"testing"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/optimizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func order(id string, pref models.PickupTimePreference, pLat, pLng, dLat, dLng float64) *models.TripRequest {
	return &models.TripRequest{
		ID:                   id,
		CustomerName:         "Customer " + id,
		CustomerPhone:        "+962700000000",
		Pickup:               models.TripLocation{Address: id + " yard", Latitude: ptr(pLat), Longitude: ptr(pLng)},
		Delivery:             models.TripLocation{Address: id + " site", Latitude: ptr(dLat), Longitude: ptr(dLng)},
		MaterialType:         "cement",
		Materials:            []models.MaterialItem{{Name: "Cement bags", Quantity: 40, Unit: "bag"}},
		PickupTimePreference: pref,
		Status:               models.TripStatusMatched,
	}
}

func stopIDs(stops []models.DeliveryStop) []string {
	ids := make([]string, 0, len(stops))
	for _, s := range stops {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestProjectStops(t *testing.T) {
	t.Run("pickup then delivery per order in input order", func(t *testing.T) {
		// Arrange
		orders := []*models.TripRequest{
			order("A", models.PickupASAP, 0, 0, 0, 1),
			order("B", models.PickupScheduled, 0, 0.5, 0, 1.5),
		}

		// Act
		stops := optimizer.ProjectStops(orders)

		// Assert
		require.Len(t, stops, 4)
		assert.Equal(t, []string{"A-pickup", "A-delivery", "B-pickup", "B-delivery"}, stopIDs(stops))
		assert.Equal(t, models.PriorityASAP, stops[0].Priority)
		assert.Equal(t, models.PriorityFlexible, stops[2].Priority)
		assert.Equal(t, models.PickupStopMinutes, stops[0].EstimatedDuration)
		assert.Equal(t, models.DeliveryStopMinutes, stops[1].EstimatedDuration)
		assert.Equal(t, "A yard", stops[0].Address)
		assert.Equal(t, "A site", stops[1].Address)
		assert.Equal(t, []string{"Cement bags"}, stops[0].Materials)
	})

	t.Run("missing coordinates skip the stop", func(t *testing.T) {
		noPickup := order("C", models.PickupASAP, 0, 0, 1, 1)
		noPickup.Pickup.Longitude = nil
		noDelivery := order("D", models.PickupASAP, 0, 0, 1, 1)
		noDelivery.Delivery.Latitude = nil

		stops := optimizer.ProjectStops([]*models.TripRequest{noPickup, noDelivery})

		assert.Equal(t, []string{"C-delivery", "D-pickup"}, stopIDs(stops))
	})

	t.Run("material type used when materials list is empty", func(t *testing.T) {
		o := order("E", models.PickupASAP, 0, 0, 1, 1)
		o.Materials = nil

		stops := optimizer.ProjectStops([]*models.TripRequest{o})

		assert.Equal(t, []string{"cement"}, stops[0].Materials)
	})
}

func TestSequence(t *testing.T) {
	t.Run("asap order is served before a flexible one", func(t *testing.T) {
		// Arrange
		stops := optimizer.ProjectStops([]*models.TripRequest{
			order("A", models.PickupASAP, 0, 0, 0, 1),
			order("B", models.PickupScheduled, 0, 0.5, 0, 1.5),
		})
		start := &models.Location{Latitude: 0, Longitude: 0}

		// Act
		sequenced := optimizer.Sequence(stops, start)

		// Assert
		assert.Equal(t, []string{"A-pickup", "A-delivery", "B-pickup", "B-delivery"}, stopIDs(sequenced))
	})

	t.Run("all asap stops precede flexible stops", func(t *testing.T) {
		stops := optimizer.ProjectStops([]*models.TripRequest{
			order("F", models.PickupScheduled, 0, 0.01, 0, 0.02),
			order("A", models.PickupASAP, 0, 3, 0, 4),
			order("B", models.PickupASAP, 0, 1, 0, 2),
		})

		sequenced := optimizer.Sequence(stops, &models.Location{})

		assert.Equal(t, []string{"B-pickup", "A-pickup", "B-delivery", "A-delivery", "F-pickup", "F-delivery"}, stopIDs(sequenced))
	})

	t.Run("delivery never precedes its pickup", func(t *testing.T) {
		stops := optimizer.ProjectStops([]*models.TripRequest{
			order("C", models.PickupScheduled, 0, 2, 0, 0.1),
		})

		sequenced := optimizer.Sequence(stops, &models.Location{})

		assert.Equal(t, []string{"C-pickup", "C-delivery"}, stopIDs(sequenced))
	})

	t.Run("ties keep the first encountered stop", func(t *testing.T) {
		stops := optimizer.ProjectStops([]*models.TripRequest{
			order("East", models.PickupScheduled, 0, 1, 0, 1.1),
			order("West", models.PickupScheduled, 0, -1, 0, -1.1),
		})

		sequenced := optimizer.Sequence(stops, &models.Location{})

		assert.Equal(t, "East-pickup", sequenced[0].ID)
	})

	t.Run("starts from the first stop without a location", func(t *testing.T) {
		stops := optimizer.ProjectStops([]*models.TripRequest{
			order("Far", models.PickupScheduled, 0, 5, 0, 5.1),
			order("Near", models.PickupScheduled, 0, 0, 0, 0.1),
		})

		sequenced := optimizer.Sequence(stops, nil)

		assert.Equal(t, "Far-pickup", sequenced[0].ID)
	})

	t.Run("output is a permutation of the input", func(t *testing.T) {
		stops := optimizer.ProjectStops([]*models.TripRequest{
			order("A", models.PickupASAP, 0, 0, 0, 1),
			order("B", models.PickupScheduled, 0, 0.5, 0, 1.5),
			order("C", models.PickupASAP, 1, 0, 1, 1),
		})
		input := append([]models.DeliveryStop(nil), stops...)

		sequenced := optimizer.Sequence(stops, nil)

		assert.ElementsMatch(t, stopIDs(stops), stopIDs(sequenced))
		assert.Equal(t, input, stops)
	})

	t.Run("single stop returned as is", func(t *testing.T) {
		stops := []models.DeliveryStop{{ID: "only"}}
		assert.Equal(t, stops, optimizer.Sequence(stops, nil))
	})
}

func TestEstimate(t *testing.T) {
	t.Run("scenario metrics", func(t *testing.T) {
		stops := optimizer.Sequence(optimizer.ProjectStops([]*models.TripRequest{
			order("A", models.PickupASAP, 0, 0, 0, 1),
			order("B", models.PickupScheduled, 0, 0.5, 0, 1.5),
		}), &models.Location{})

		metrics := optimizer.Estimate(stops, optimizer.DefaultParams())

		assert.InDelta(t, 277.98, metrics.TotalDistance, 0.01)
		assert.InDelta(t, 70+2*metrics.TotalDistance, metrics.TotalDuration, 1e-9)
		assert.InDelta(t, metrics.TotalDistance*0.8, metrics.FuelCost, 1e-9)
		assert.Equal(t, 23, metrics.FuelSavings)
		assert.Equal(t, 167, metrics.TimeSavings)
		assert.Equal(t, 95, metrics.EfficiencyScore)
		assert.Len(t, metrics.RouteCoordinates, 4)
		assert.Equal(t, models.Coordinate{Lat: 0, Lng: 1}, metrics.RouteCoordinates[1])
	})

	t.Run("no asap bonus", func(t *testing.T) {
		stops := optimizer.ProjectStops([]*models.TripRequest{
			order("B", models.PickupScheduled, 0, 0.5, 0, 1.5),
		})

		metrics := optimizer.Estimate(stops, optimizer.DefaultParams())

		assert.Equal(t, 83, metrics.EfficiencyScore)
	})

	t.Run("zero distance route", func(t *testing.T) {
		stops := optimizer.ProjectStops([]*models.TripRequest{
			order("Z", models.PickupScheduled, 1, 1, 1, 1),
		})

		metrics := optimizer.Estimate(stops, optimizer.DefaultParams())

		assert.Equal(t, 0.0, metrics.TotalDistance)
		assert.Equal(t, 35.0, metrics.TotalDuration)
		assert.Equal(t, 0, metrics.FuelSavings)
		assert.Equal(t, 0, metrics.TimeSavings)
		assert.Equal(t, 60, metrics.EfficiencyScore)
	})

	t.Run("bounds hold for any params", func(t *testing.T) {
		stops := optimizer.ProjectStops([]*models.TripRequest{
			order("A", models.PickupASAP, 10, 10, 20, 20),
			order("B", models.PickupASAP, -5, 3, 7, -9),
		})

		for _, p := range []optimizer.Params{{}, {BaselineFactor: 5}, {FuelCostPerKm: 2, MinutesPerKm: 3}} {
			metrics := optimizer.Estimate(stops, p)

			assert.GreaterOrEqual(t, metrics.TotalDistance, 0.0)
			assert.GreaterOrEqual(t, metrics.FuelSavings, 0)
			assert.GreaterOrEqual(t, metrics.TimeSavings, 0)
			assert.LessOrEqual(t, metrics.EfficiencyScore, 95)
			assert.GreaterOrEqual(t, metrics.EfficiencyScore, 60)
		}
	})
}
