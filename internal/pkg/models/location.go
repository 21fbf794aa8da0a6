package models

import "time"

// Location is a point on the map with an optional human readable address
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Valid reports whether the coordinates are on the globe
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// LocationUpdate is the payload drivers' apps publish on location.update
type LocationUpdate struct {
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
