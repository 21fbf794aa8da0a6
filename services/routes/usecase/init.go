package usecase

import (
	"sync"
	"time"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/routes/optimizer"
)

// RouteUC implements the route use case interface
type RouteUC struct {
	cfg          *models.Config
	routeRepo    routes.RouteRepo
	locationRepo routes.LocationRepo
	tripSource   routes.TripSource
	driverStatus routes.DriverStatusUpdater
	routeGW      routes.RouteGW
	params       optimizer.Params
	now          func() time.Time
	newID        func() string

	// driverLocks serializes read-modify-write of one driver's route. An
	// entry lives only while someone holds or waits for it.
	locksMu     sync.Mutex
	driverLocks map[string]*driverLock
}

type driverLock struct {
	mu   sync.Mutex
	refs int
}

// NewRouteUC creates a new route use case
func NewRouteUC(
	cfg *models.Config,
	routeRepo routes.RouteRepo,
	locationRepo routes.LocationRepo,
	tripSource routes.TripSource,
	driverStatus routes.DriverStatusUpdater,
	routeGW routes.RouteGW,
) *RouteUC {
	return &RouteUC{
		cfg:          cfg,
		routeRepo:    routeRepo,
		locationRepo: locationRepo,
		tripSource:   tripSource,
		driverStatus: driverStatus,
		routeGW:      routeGW,
		params: optimizer.Params{
			FuelCostPerKm:  cfg.Routing.FuelCostPerKm,
			BaselineFactor: cfg.Routing.BaselineFactor,
			MinutesPerKm:   cfg.Routing.MinutesPerKm,
		},
		now:         time.Now,
		newID:       newRouteID,
		driverLocks: make(map[string]*driverLock),
	}
}

func (uc *RouteUC) lockDriver(driverID string) func() {
	uc.locksMu.Lock()
	l, ok := uc.driverLocks[driverID]
	if !ok {
		l = &driverLock{}
		uc.driverLocks[driverID] = l
	}
	l.refs++
	uc.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		uc.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(uc.driverLocks, driverID)
		}
		uc.locksMu.Unlock()
	}
}
