package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
)

// MemoryRouteRepo keeps routes and locations in process memory for local runs
type MemoryRouteRepo struct {
	mu        sync.RWMutex
	routes    map[string][]byte
	locations map[string]models.Location
}

// NewMemoryRouteRepo creates an empty in-memory route repository
func NewMemoryRouteRepo() *MemoryRouteRepo {
	return &MemoryRouteRepo{
		routes:    make(map[string][]byte),
		locations: make(map[string]models.Location),
	}
}

// GetActiveRoute decodes a private copy of the stored snapshot
func (m *MemoryRouteRepo) GetActiveRoute(_ context.Context, driverID string) (*models.OptimizedRoute, error) {
	m.mu.RLock()
	raw, ok := m.routes[driverID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var route models.OptimizedRoute
	if err := json.Unmarshal(raw, &route); err != nil {
		return nil, fmt.Errorf("failed to decode active route: %w", err)
	}
	return &route, nil
}

func (m *MemoryRouteRepo) SaveActiveRoute(_ context.Context, route *models.OptimizedRoute) error {
	raw, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to encode active route: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[route.DriverID] = raw
	return nil
}

func (m *MemoryRouteRepo) DeleteActiveRoute(_ context.Context, driverID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.routes, driverID)
	return nil
}

func (m *MemoryRouteRepo) GetDriverLocation(_ context.Context, driverID string) (*models.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	loc, ok := m.locations[driverID]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (m *MemoryRouteRepo) SetDriverLocation(_ context.Context, driverID string, location models.Location) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locations[driverID] = location
	return nil
}
