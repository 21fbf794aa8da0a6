package constants

// NATS Subjects
const (
	// Inbound
	SubjectLocationUpdate = "location.update"

	// Trips
	SubjectTripMatched = "trip.matched"

	// Routes
	SubjectRouteOptimized     = "route.optimized"
	SubjectRouteAccepted      = "route.accepted"
	SubjectRouteStarted       = "route.started"
	SubjectRouteStopCompleted = "route.stop_completed"
	SubjectRouteCompleted     = "route.completed"
	SubjectRouteCleared       = "route.cleared"
)
