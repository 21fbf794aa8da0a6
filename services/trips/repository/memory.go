package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/utils"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/trips"
)

// MemoryStore keeps trips and driver profiles in process memory. One lock
// guards both maps so a claim updates the trip and the driver together.
type MemoryStore struct {
	mu      sync.RWMutex
	trips   map[string]*models.TripRequest
	drivers map[string]*models.DriverProfile
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trips:   make(map[string]*models.TripRequest),
		drivers: make(map[string]*models.DriverProfile),
	}
}

// PutTrip inserts or replaces a trip
func (m *MemoryStore) PutTrip(trip *models.TripRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = copyTrip(trip)
}

// PutDriver inserts or replaces a driver profile
func (m *MemoryStore) PutDriver(driver *models.DriverProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := *driver
	d.PreferredTruckTypes = append([]string{}, driver.PreferredTruckTypes...)
	m.drivers[d.UserID] = &d
}

func (m *MemoryStore) GetTrip(_ context.Context, tripID string) (*models.TripRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	trip, ok := m.trips[tripID]
	if !ok {
		return nil, trips.ErrTripNotFound
	}
	return copyTrip(trip), nil
}

func (m *MemoryStore) GetTripsByIDs(_ context.Context, tripIDs []string) ([]*models.TripRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*models.TripRequest, 0, len(tripIDs))
	seen := make(map[string]bool, len(tripIDs))
	for _, id := range tripIDs {
		if trip, ok := m.trips[id]; ok && !seen[id] {
			result = append(result, copyTrip(trip))
			seen[id] = true
		}
	}
	return result, nil
}

func (m *MemoryStore) ListPendingTrips(_ context.Context, prefixes []string, limit int) ([]*models.TripRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var precision uint
	allowed := make(map[string]bool, len(prefixes))
	for _, p := range prefixes {
		allowed[p] = true
		precision = uint(len(p))
	}

	result := make([]*models.TripRequest, 0)
	for _, trip := range m.trips {
		if !trip.IsOpen() {
			continue
		}
		if len(allowed) > 0 {
			lat, lng, ok := trip.Pickup.Coordinates()
			if !ok {
				continue
			}
			cell := utils.EncodeLocation(models.Location{Latitude: lat, Longitude: lng}, precision)
			if !allowed[cell] {
				continue
			}
		}
		result = append(result, copyTrip(trip))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// ClaimTrip is the in-memory counterpart of the conditional update. The write
// lock makes check and assignment one step.
func (m *MemoryStore) ClaimTrip(_ context.Context, tripID, driverID string, matchedAt time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	trip, ok := m.trips[tripID]
	if !ok || !trip.IsOpen() {
		return false, nil
	}
	driver, ok := m.drivers[driverID]
	if !ok {
		return false, trips.ErrDriverNotFound
	}

	assigned := driverID
	at := matchedAt
	trip.Status = models.TripStatusMatched
	trip.AssignedDriverID = &assigned
	trip.MatchedAt = &at
	trip.UpdatedAt = matchedAt

	driver.Status = models.DriverStatusBusy
	driver.IsAvailable = false
	driver.UpdatedAt = matchedAt
	return true, nil
}

func (m *MemoryStore) GetDriverProfile(_ context.Context, driverID string) (*models.DriverProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	driver, ok := m.drivers[driverID]
	if !ok {
		return nil, trips.ErrDriverNotFound
	}
	d := *driver
	d.PreferredTruckTypes = append([]string{}, driver.PreferredTruckTypes...)
	return &d, nil
}

func (m *MemoryStore) UpdateDriverStatus(_ context.Context, driverID string, status models.DriverStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	driver, ok := m.drivers[driverID]
	if !ok {
		return trips.ErrDriverNotFound
	}
	driver.Status = status
	driver.IsAvailable = status == models.DriverStatusAvailable
	driver.UpdatedAt = time.Now()
	return nil
}

func copyTrip(t *models.TripRequest) *models.TripRequest {
	c := *t
	c.Materials = append([]models.MaterialItem{}, t.Materials...)
	if t.AssignedDriverID != nil {
		id := *t.AssignedDriverID
		c.AssignedDriverID = &id
	}
	if t.MatchedAt != nil {
		at := *t.MatchedAt
		c.MatchedAt = &at
	}
	return &c
}
