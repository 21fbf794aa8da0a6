package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/database"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, ttl time.Duration) (*RouteRepo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRouteRepo(&database.RedisClient{Client: client}, ttl), mr
}

func sampleRoute() *models.OptimizedRoute {
	return &models.OptimizedRoute{
		ID:       "route-1",
		DriverID: "driver-1",
		Stops: []models.DeliveryStop{
			{ID: "o1-pickup", OrderID: "o1", Type: models.StopTypePickup, Latitude: 31.95, Longitude: 35.91, Priority: models.PriorityASAP, EstimatedDuration: 15, Materials: []string{"cement"}},
			{ID: "o1-delivery", OrderID: "o1", Type: models.StopTypeDelivery, Latitude: 32.55, Longitude: 35.85, Priority: models.PriorityASAP, EstimatedDuration: 20, Materials: []string{"cement"}},
		},
		RouteMetrics: models.RouteMetrics{TotalDistance: 66.9, TotalDuration: 168.8, EfficiencyScore: 95},
		Status:       models.RouteStatusPending,
		CreatedAt:    time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestRouteRepo_ActiveRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("missing route is nil without error", func(t *testing.T) {
		repo, _ := newTestRepo(t, 0)

		route, err := repo.GetActiveRoute(ctx, "driver-1")

		assert.NoError(t, err)
		assert.Nil(t, route)
	})

	t.Run("save then load round trips the snapshot", func(t *testing.T) {
		repo, mr := newTestRepo(t, 0)
		want := sampleRoute()

		require.NoError(t, repo.SaveActiveRoute(ctx, want))
		assert.True(t, mr.Exists("driver:route:driver-1"))
		assert.Zero(t, mr.TTL("driver:route:driver-1"))

		got, err := repo.GetActiveRoute(ctx, "driver-1")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("ttl applied when configured", func(t *testing.T) {
		repo, mr := newTestRepo(t, 24*time.Hour)

		require.NoError(t, repo.SaveActiveRoute(ctx, sampleRoute()))

		assert.Equal(t, 24*time.Hour, mr.TTL("driver:route:driver-1"))
		mr.FastForward(25 * time.Hour)

		route, err := repo.GetActiveRoute(ctx, "driver-1")
		assert.NoError(t, err)
		assert.Nil(t, route)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo, _ := newTestRepo(t, 0)
		require.NoError(t, repo.SaveActiveRoute(ctx, sampleRoute()))

		assert.NoError(t, repo.DeleteActiveRoute(ctx, "driver-1"))
		assert.NoError(t, repo.DeleteActiveRoute(ctx, "driver-1"))

		route, err := repo.GetActiveRoute(ctx, "driver-1")
		assert.NoError(t, err)
		assert.Nil(t, route)
	})

	t.Run("corrupt snapshot is an error", func(t *testing.T) {
		repo, mr := newTestRepo(t, 0)
		require.NoError(t, mr.Set("driver:route:driver-1", "not-json"))

		route, err := repo.GetActiveRoute(ctx, "driver-1")

		assert.Error(t, err)
		assert.Nil(t, route)
	})
}

func TestRouteRepo_DriverLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown driver has no location", func(t *testing.T) {
		repo, _ := newTestRepo(t, 0)

		loc, err := repo.GetDriverLocation(ctx, "driver-1")

		assert.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("set then get", func(t *testing.T) {
		repo, mr := newTestRepo(t, 0)
		ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

		require.NoError(t, repo.SetDriverLocation(ctx, "driver-1", models.Location{Latitude: 31.9539, Longitude: 35.9106, Timestamp: ts}))
		assert.Equal(t, "31.9539", mr.HGet("driver:location:driver-1", "lat"))

		loc, err := repo.GetDriverLocation(ctx, "driver-1")
		require.NoError(t, err)
		assert.Equal(t, 31.9539, loc.Latitude)
		assert.Equal(t, 35.9106, loc.Longitude)
		assert.True(t, ts.Equal(loc.Timestamp))
	})

	t.Run("malformed latitude", func(t *testing.T) {
		repo, mr := newTestRepo(t, 0)
		mr.HSet("driver:location:driver-1", "lat", "north", "lng", "35.9")

		loc, err := repo.GetDriverLocation(ctx, "driver-1")

		assert.Error(t, err)
		assert.Nil(t, loc)
	})
}
