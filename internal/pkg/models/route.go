package models

import "time"

// StopType distinguishes where the truck loads from where it unloads
type StopType string

const (
	StopTypePickup   StopType = "pickup"
	StopTypeDelivery StopType = "delivery"
)

// StopPriority drives the sequencing order
type StopPriority string

const (
	PriorityASAP      StopPriority = "asap"
	PriorityScheduled StopPriority = "scheduled"
	PriorityFlexible  StopPriority = "flexible"
)

// Fixed service times at a stop, in minutes
const (
	PickupStopMinutes   = 15
	DeliveryStopMinutes = 20
)

// TimeWindow bounds when a stop may be served
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DeliveryStop is one visit in a multi-stop route
type DeliveryStop struct {
	ID                string       `json:"id"`
	OrderID           string       `json:"order_id"`
	Type              StopType     `json:"type"`
	Address           string       `json:"address"`
	Latitude          float64      `json:"latitude"`
	Longitude         float64      `json:"longitude"`
	Priority          StopPriority `json:"priority"`
	EstimatedDuration int          `json:"estimated_duration"` // minutes
	CustomerName      string       `json:"customer_name"`
	CustomerPhone     string       `json:"customer_phone"`
	Materials         []string     `json:"materials"`
	TimeWindow        *TimeWindow  `json:"time_window,omitempty"`
}

// Location returns the stop as a map point
func (s DeliveryStop) Location() Location {
	return Location{Latitude: s.Latitude, Longitude: s.Longitude, Address: s.Address}
}

// RouteStatus is the lifecycle state of a driver's route
type RouteStatus string

const (
	RouteStatusPending    RouteStatus = "pending"
	RouteStatusAccepted   RouteStatus = "accepted"
	RouteStatusInProgress RouteStatus = "in_progress"
	RouteStatusCompleted  RouteStatus = "completed"
)

// Coordinate is a polyline vertex
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteMetrics summarizes a sequenced route
type RouteMetrics struct {
	TotalDistance    float64      `json:"total_distance"` // km
	TotalDuration    float64      `json:"total_duration"` // minutes
	FuelCost         float64      `json:"fuel_cost"`
	TimeSavings      int          `json:"time_savings"` // minutes
	FuelSavings      int          `json:"fuel_savings"` // percent
	EfficiencyScore  int          `json:"efficiency_score"`
	RouteCoordinates []Coordinate `json:"route_coordinates"`
}

// OptimizedRoute is the persisted active route of a driver
type OptimizedRoute struct {
	ID       string         `json:"id"`
	DriverID string         `json:"driver_id"`
	Stops    []DeliveryStop `json:"stops"`
	RouteMetrics
	Status      RouteStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	AcceptedAt  *time.Time  `json:"accepted_at,omitempty"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// NextStop returns the first remaining stop, or nil
func (r *OptimizedRoute) NextStop() *DeliveryStop {
	if r == nil || len(r.Stops) == 0 {
		return nil
	}
	stop := r.Stops[0]
	return &stop
}

// OptimizeRouteRequest is the body of a route optimization call
type OptimizeRouteRequest struct {
	TripIDs         []string  `json:"trip_ids"`
	CurrentLocation *Location `json:"current_location,omitempty"`
}
