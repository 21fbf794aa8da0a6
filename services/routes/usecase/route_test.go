package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/mocks"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/repository"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func testConfig() *models.Config {
	return &models.Config{
		Routing: models.RoutingConfig{FuelCostPerKm: 0.8, BaselineFactor: 1.3, MinutesPerKm: 2},
	}
}

func order(id string, pLat, pLng, dLat, dLng float64) *models.TripRequest {
	driverID := "driver-1"
	return &models.TripRequest{
		ID:                   id,
		Pickup:               models.TripLocation{Latitude: ptr(pLat), Longitude: ptr(pLng)},
		Delivery:             models.TripLocation{Latitude: ptr(dLat), Longitude: ptr(dLng)},
		MaterialType:         "gravel",
		PickupTimePreference: models.PickupScheduled,
		Status:               models.TripStatusMatched,
		AssignedDriverID:     &driverID,
	}
}

func twoOrders() []*models.TripRequest {
	return []*models.TripRequest{
		order("A", 0, 0, 0, 1),
		order("B", 0, 0.5, 0, 1.5),
	}
}

func stopIDs(stops []models.DeliveryStop) []string {
	ids := make([]string, 0, len(stops))
	for _, s := range stops {
		ids = append(ids, s.ID)
	}
	return ids
}

// eventLog collects published route events
type eventLog struct {
	mu     sync.Mutex
	events []models.RouteEvent
}

func (l *eventLog) record(_ context.Context, event models.RouteEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
	return nil
}

func (l *eventLog) types() []models.RouteEventType {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.RouteEventType, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e.Type)
	}
	return out
}

type routeFixture struct {
	store        *repository.MemoryRouteRepo
	tripSource   *mocks.MockTripSource
	driverStatus *mocks.MockDriverStatusUpdater
	events       *eventLog
	uc           *usecase.RouteUC
}

func newRouteFixture(t *testing.T) routeFixture {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockRouteGW(ctrl)
	f := routeFixture{
		store:        repository.NewMemoryRouteRepo(),
		tripSource:   mocks.NewMockTripSource(ctrl),
		driverStatus: mocks.NewMockDriverStatusUpdater(ctrl),
		events:       &eventLog{},
	}
	gw.EXPECT().PublishRouteEvent(gomock.Any(), gomock.Any()).DoAndReturn(f.events.record).AnyTimes()
	f.uc = usecase.NewRouteUC(testConfig(), f.store, f.store, f.tripSource, f.driverStatus, gw)
	return f
}

func TestRouteUC_OptimizeMultiStopRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("fewer than two orders rejected before any work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRouteRepo(ctrl)
		uc := usecase.NewRouteUC(testConfig(), repo, nil, nil, nil, nil)

		route, err := uc.OptimizeMultiStopRoute(ctx, "driver-1", twoOrders()[:1], nil)

		assert.ErrorIs(t, err, routes.ErrNotEnoughOrders)
		assert.Nil(t, route)
	})

	t.Run("orders without coordinates cannot be routed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRouteRepo(ctrl)
		uc := usecase.NewRouteUC(testConfig(), repo, nil, nil, nil, nil)
		orders := twoOrders()
		for _, o := range orders {
			o.Pickup.Latitude = nil
			o.Delivery.Latitude = nil
		}

		route, err := uc.OptimizeMultiStopRoute(ctx, "driver-1", orders, nil)

		assert.ErrorIs(t, err, routes.ErrNoRoutableStops)
		assert.Nil(t, route)
	})

	t.Run("pending route persisted and announced", func(t *testing.T) {
		f := newRouteFixture(t)

		route, err := f.uc.OptimizeMultiStopRoute(ctx, "driver-1", twoOrders(), &models.Location{Latitude: 0, Longitude: 0})

		require.NoError(t, err)
		assert.NotEmpty(t, route.ID)
		assert.Equal(t, "driver-1", route.DriverID)
		assert.Equal(t, models.RouteStatusPending, route.Status)
		assert.Equal(t, []string{"A-pickup", "B-pickup", "A-delivery", "B-delivery"}, stopIDs(route.Stops))
		assert.Greater(t, route.TotalDistance, 0.0)
		assert.Len(t, route.RouteCoordinates, 4)

		stored, err := f.uc.GetActiveRoute(ctx, "driver-1")
		require.NoError(t, err)
		assert.Equal(t, route.ID, stored.ID)
		assert.Equal(t, []models.RouteEventType{models.RouteEventOptimized}, f.events.types())
	})

	t.Run("last reported location used when none supplied", func(t *testing.T) {
		f := newRouteFixture(t)
		require.NoError(t, f.store.SetDriverLocation(ctx, "driver-1", models.Location{Latitude: 0, Longitude: 2}))
		orders := []*models.TripRequest{
			order("A", 0, 0, 0, 0.1),
			order("B", 0, 1.9, 0, 1.8),
		}

		route, err := f.uc.OptimizeMultiStopRoute(ctx, "driver-1", orders, nil)

		require.NoError(t, err)
		assert.Equal(t, "B-pickup", route.Stops[0].ID)
	})

	t.Run("new route replaces the previous one", func(t *testing.T) {
		f := newRouteFixture(t)
		first, err := f.uc.OptimizeMultiStopRoute(ctx, "driver-1", twoOrders(), nil)
		require.NoError(t, err)

		second, err := f.uc.OptimizeMultiStopRoute(ctx, "driver-1", twoOrders(), nil)
		require.NoError(t, err)

		active, err := f.uc.GetActiveRoute(ctx, "driver-1")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, second.ID, active.ID)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRouteRepo(ctrl)
		repo.EXPECT().SaveActiveRoute(ctx, gomock.Any()).Return(errors.New("redis down"))
		uc := usecase.NewRouteUC(testConfig(), repo, nil, nil, nil, nil)

		route, err := uc.OptimizeMultiStopRoute(ctx, "driver-1", twoOrders(), nil)

		assert.Error(t, err)
		assert.Nil(t, route)
	})

	t.Run("publish failure does not fail optimization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockRouteGW(ctrl)
		gw.EXPECT().PublishRouteEvent(ctx, gomock.Any()).Return(errors.New("nats down"))
		store := repository.NewMemoryRouteRepo()
		uc := usecase.NewRouteUC(testConfig(), store, store, nil, nil, gw)

		route, err := uc.OptimizeMultiStopRoute(ctx, "driver-1", twoOrders(), nil)

		require.NoError(t, err)
		assert.NotNil(t, route)
	})
}

func TestRouteUC_OptimizeAssignedTrips(t *testing.T) {
	ctx := context.Background()

	t.Run("only trips assigned to the driver are routed", func(t *testing.T) {
		f := newRouteFixture(t)
		other := "driver-2"
		foreign := order("C", 0, 3, 0, 4)
		foreign.AssignedDriverID = &other
		delivered := order("D", 0, 5, 0, 6)
		delivered.Status = models.TripStatusDelivered
		trips := append(twoOrders(), foreign, delivered)

		f.tripSource.EXPECT().GetTripsByIDs(ctx, []string{"A", "B", "C", "D"}).Return(trips, nil)

		route, err := f.uc.OptimizeAssignedTrips(ctx, "driver-1", []string{"A", "B", "C", "D"}, nil)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"A-pickup", "A-delivery", "B-pickup", "B-delivery"}, stopIDs(route.Stops))
	})

	t.Run("too few assigned trips", func(t *testing.T) {
		f := newRouteFixture(t)
		trips := twoOrders()
		trips[1].AssignedDriverID = nil

		f.tripSource.EXPECT().GetTripsByIDs(ctx, []string{"A", "B"}).Return(trips, nil)

		_, err := f.uc.OptimizeAssignedTrips(ctx, "driver-1", []string{"A", "B"}, nil)

		assert.ErrorIs(t, err, routes.ErrNotEnoughOrders)
	})

	t.Run("single id rejected without loading", func(t *testing.T) {
		f := newRouteFixture(t)

		_, err := f.uc.OptimizeAssignedTrips(ctx, "driver-1", []string{"A"}, nil)

		assert.ErrorIs(t, err, routes.ErrNotEnoughOrders)
	})

	t.Run("trip store failure", func(t *testing.T) {
		f := newRouteFixture(t)
		f.tripSource.EXPECT().GetTripsByIDs(ctx, gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.uc.OptimizeAssignedTrips(ctx, "driver-1", []string{"A", "B"}, nil)

		assert.Error(t, err)
	})
}

func TestRouteUC_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newRouteFixture(t)

	route, err := f.uc.OptimizeMultiStopRoute(ctx, "driver-1", twoOrders(), &models.Location{})
	require.NoError(t, err)

	// Start needs an accepted route
	started, err := f.uc.StartRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.False(t, started)

	// Accept needs the active route id
	accepted, err := f.uc.AcceptRoute(ctx, "driver-1", "route-unknown")
	require.NoError(t, err)
	assert.False(t, accepted)

	accepted, err = f.uc.AcceptRoute(ctx, "driver-1", route.ID)
	require.NoError(t, err)
	assert.True(t, accepted)

	accepted, err = f.uc.AcceptRoute(ctx, "driver-1", route.ID)
	require.NoError(t, err)
	assert.False(t, accepted, "accept is not repeatable")

	// Stops cannot be completed before the route starts
	stop, err := f.uc.CompleteStop(ctx, "driver-1", "A-pickup")
	require.NoError(t, err)
	assert.Nil(t, stop)

	started, err = f.uc.StartRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.True(t, started)

	active, err := f.uc.GetActiveRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, models.RouteStatusInProgress, active.Status)
	assert.NotNil(t, active.AcceptedAt)
	assert.NotNil(t, active.StartedAt)

	stop, err = f.uc.CompleteStop(ctx, "driver-1", "Z-pickup")
	require.NoError(t, err)
	assert.Nil(t, stop, "unknown stop")

	f.driverStatus.EXPECT().UpdateDriverStatus(ctx, "driver-1", models.DriverStatusAvailable).Return(nil)

	remaining := len(route.Stops)
	for remaining > 0 {
		next, err := f.uc.GetNextStop(ctx, "driver-1")
		require.NoError(t, err)
		require.NotNil(t, next)

		done, err := f.uc.CompleteStop(ctx, "driver-1", next.ID)
		require.NoError(t, err)
		require.NotNil(t, done)
		assert.Equal(t, next.ID, done.ID)

		active, err = f.uc.GetActiveRoute(ctx, "driver-1")
		require.NoError(t, err)
		assert.Len(t, active.Stops, remaining-1)
		remaining--
	}

	assert.Equal(t, models.RouteStatusCompleted, active.Status)
	assert.NotNil(t, active.CompletedAt)

	next, err := f.uc.GetNextStop(ctx, "driver-1")
	require.NoError(t, err)
	assert.Nil(t, next)

	// Completed routes never move backwards
	started, err = f.uc.StartRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.False(t, started)

	assert.Equal(t, []models.RouteEventType{
		models.RouteEventOptimized,
		models.RouteEventAccepted,
		models.RouteEventStarted,
		models.RouteEventStopCompleted,
		models.RouteEventStopCompleted,
		models.RouteEventStopCompleted,
		models.RouteEventStopCompleted,
		models.RouteEventCompleted,
	}, f.events.types())
}

func TestRouteUC_CompleteLastStopDriverStatusFailure(t *testing.T) {
	ctx := context.Background()
	f := newRouteFixture(t)
	now := time.Now().UTC()
	require.NoError(t, f.store.SaveActiveRoute(ctx, &models.OptimizedRoute{
		ID:        "route-1",
		DriverID:  "driver-1",
		Stops:     []models.DeliveryStop{{ID: "A-delivery", OrderID: "A", Type: models.StopTypeDelivery}},
		Status:    models.RouteStatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	f.driverStatus.EXPECT().UpdateDriverStatus(ctx, "driver-1", models.DriverStatusAvailable).Return(errors.New("db down"))

	stop, err := f.uc.CompleteStop(ctx, "driver-1", "A-delivery")

	require.NoError(t, err)
	require.NotNil(t, stop)
	active, err := f.uc.GetActiveRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, models.RouteStatusCompleted, active.Status)
}

func TestRouteUC_NoActiveRoute(t *testing.T) {
	ctx := context.Background()
	f := newRouteFixture(t)

	route, err := f.uc.GetActiveRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.Nil(t, route)

	next, err := f.uc.GetNextStop(ctx, "driver-1")
	require.NoError(t, err)
	assert.Nil(t, next)

	accepted, err := f.uc.AcceptRoute(ctx, "driver-1", "route-1")
	require.NoError(t, err)
	assert.False(t, accepted)

	started, err := f.uc.StartRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.False(t, started)

	stop, err := f.uc.CompleteStop(ctx, "driver-1", "A-pickup")
	require.NoError(t, err)
	assert.Nil(t, stop)

	assert.NoError(t, f.uc.ClearRoute(ctx, "driver-1"))
	assert.Empty(t, f.events.types())
}

func TestRouteUC_ClearRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("discards a route in any state", func(t *testing.T) {
		f := newRouteFixture(t)
		route, err := f.uc.OptimizeMultiStopRoute(ctx, "driver-1", twoOrders(), nil)
		require.NoError(t, err)
		_, err = f.uc.AcceptRoute(ctx, "driver-1", route.ID)
		require.NoError(t, err)
		_, err = f.uc.StartRoute(ctx, "driver-1")
		require.NoError(t, err)

		require.NoError(t, f.uc.ClearRoute(ctx, "driver-1"))

		active, err := f.uc.GetActiveRoute(ctx, "driver-1")
		require.NoError(t, err)
		assert.Nil(t, active)
		types := f.events.types()
		assert.Equal(t, models.RouteEventCleared, types[len(types)-1])
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockRouteRepo(ctrl)
		repo.EXPECT().GetActiveRoute(ctx, "driver-1").Return(&models.OptimizedRoute{ID: "route-1", DriverID: "driver-1"}, nil)
		repo.EXPECT().DeleteActiveRoute(ctx, "driver-1").Return(errors.New("redis down"))
		uc := usecase.NewRouteUC(testConfig(), repo, nil, nil, nil, nil)

		assert.Error(t, uc.ClearRoute(ctx, "driver-1"))
	})
}

func TestRouteUC_ConcurrentCompleteStop(t *testing.T) {
	ctx := context.Background()
	f := newRouteFixture(t)
	route, err := f.uc.OptimizeMultiStopRoute(ctx, "driver-1", twoOrders(), nil)
	require.NoError(t, err)
	_, err = f.uc.AcceptRoute(ctx, "driver-1", route.ID)
	require.NoError(t, err)
	_, err = f.uc.StartRoute(ctx, "driver-1")
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stop, err := f.uc.CompleteStop(ctx, "driver-1", "A-pickup")
			assert.NoError(t, err)
			if stop != nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	active, err := f.uc.GetActiveRoute(ctx, "driver-1")
	require.NoError(t, err)
	assert.Len(t, active.Stops, 3)
}

func TestRouteUC_UpdateDriverLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the position", func(t *testing.T) {
		f := newRouteFixture(t)
		at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		err := f.uc.UpdateDriverLocation(ctx, models.LocationUpdate{
			DriverID:  "driver-1",
			Location:  models.Location{Latitude: 31.95, Longitude: 35.91},
			CreatedAt: at,
		})

		require.NoError(t, err)
		loc, err := f.store.GetDriverLocation(ctx, "driver-1")
		require.NoError(t, err)
		assert.Equal(t, 31.95, loc.Latitude)
		assert.True(t, at.Equal(loc.Timestamp))
	})

	t.Run("driver id required", func(t *testing.T) {
		f := newRouteFixture(t)

		assert.Error(t, f.uc.UpdateDriverLocation(ctx, models.LocationUpdate{}))
	})
}
