package models

import "time"

// TripMatchedEvent is published after a driver claimed a trip
type TripMatchedEvent struct {
	TripID    string    `json:"trip_id"`
	DriverID  string    `json:"driver_id"`
	MatchedAt time.Time `json:"matched_at"`
}

// RouteEventType names a route lifecycle transition
type RouteEventType string

const (
	RouteEventOptimized     RouteEventType = "optimized"
	RouteEventAccepted      RouteEventType = "accepted"
	RouteEventStarted       RouteEventType = "started"
	RouteEventStopCompleted RouteEventType = "stop_completed"
	RouteEventCompleted     RouteEventType = "completed"
	RouteEventCleared       RouteEventType = "cleared"
)

// RouteEvent is published on every route lifecycle transition
type RouteEvent struct {
	Type           RouteEventType `json:"type"`
	RouteID        string         `json:"route_id"`
	DriverID       string         `json:"driver_id"`
	Status         RouteStatus    `json:"status"`
	StopID         string         `json:"stop_id,omitempty"`
	RemainingStops int            `json:"remaining_stops"`
	OccurredAt     time.Time      `json:"occurred_at"`
}
