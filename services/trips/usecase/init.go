package usecase

import (
	"time"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/trips"
)

// feedOverscan widens the prefiltered query because rows outside the search
// radius are dropped after it returns
const feedOverscan = 4

// TripUC implements the trip use case interface
type TripUC struct {
	cfg        *models.Config
	tripRepo   trips.TripRepo
	driverRepo trips.DriverRepo
	tripGW     trips.TripGW
	now        func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	driverRepo trips.DriverRepo,
	tripGW trips.TripGW,
) *TripUC {
	return &TripUC{
		cfg:        cfg,
		tripRepo:   tripRepo,
		driverRepo: driverRepo,
		tripGW:     tripGW,
		now:        time.Now,
	}
}
