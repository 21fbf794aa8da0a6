package models

import (
	"database/sql"
	"time"
)

// TripStatus represents the lifecycle state of a delivery trip
type TripStatus string

const (
	TripStatusPending   TripStatus = "pending"
	TripStatusMatched   TripStatus = "matched"
	TripStatusInTransit TripStatus = "in_transit"
	TripStatusDelivered TripStatus = "delivered"
	TripStatusCancelled TripStatus = "cancelled"
)

// PickupTimePreference tells whether the customer wants the pickup right away
type PickupTimePreference string

const (
	PickupASAP      PickupTimePreference = "asap"
	PickupScheduled PickupTimePreference = "scheduled"
)

// MaterialItem is one line of the materials list attached to a trip
type MaterialItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

// TripLocation is a trip endpoint. Coordinates are nullable because orders
// can be created from an address before geocoding finished.
type TripLocation struct {
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Coordinates returns the point and whether both coordinates are present
func (l TripLocation) Coordinates() (lat, lng float64, ok bool) {
	if l.Latitude == nil || l.Longitude == nil {
		return 0, 0, false
	}
	return *l.Latitude, *l.Longitude, true
}

// TripRequest is a customer delivery order as seen by drivers
type TripRequest struct {
	ID                   string               `json:"id"`
	CustomerID           string               `json:"customer_id,omitempty"`
	CustomerName         string               `json:"customer_name"`
	CustomerPhone        string               `json:"customer_phone"`
	Pickup               TripLocation         `json:"pickup"`
	Delivery             TripLocation         `json:"delivery"`
	MaterialType         string               `json:"material_type"`
	Materials            []MaterialItem       `json:"materials"`
	RequiredTruckTypeID  string               `json:"required_truck_type_id,omitempty"`
	RequiredTruckType    string               `json:"required_truck_type,omitempty"`
	PickupTimePreference PickupTimePreference `json:"pickup_time_preference"`
	ScheduledPickupTime  *time.Time           `json:"scheduled_pickup_time,omitempty"`
	QuotedPrice          float64              `json:"quoted_price"`
	EstimatedEarnings    float64              `json:"estimated_earnings"`
	EstimatedDistanceKm  float64              `json:"estimated_distance_km"`
	EstimatedDurationMin int                  `json:"estimated_duration_min"`
	Status               TripStatus           `json:"status"`
	AssignedDriverID     *string              `json:"assigned_driver_id,omitempty"`
	MatchedAt            *time.Time           `json:"matched_at,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

// IsASAP reports whether the customer asked for an immediate pickup
func (t *TripRequest) IsASAP() bool {
	return t.PickupTimePreference == PickupASAP
}

// IsOpen reports whether the trip can still be claimed by a driver
func (t *TripRequest) IsOpen() bool {
	return t.Status == TripStatusPending && t.AssignedDriverID == nil
}

// MaterialNames flattens the materials list into display names
func (t *TripRequest) MaterialNames() []string {
	names := make([]string, 0, len(t.Materials))
	for _, m := range t.Materials {
		if m.Name != "" {
			names = append(names, m.Name)
		}
	}
	if len(names) == 0 && t.MaterialType != "" {
		names = append(names, t.MaterialType)
	}
	return names
}

// TripDTO is the row shape of trip_requests joined with truck_types
type TripDTO struct {
	ID                   string          `db:"id"`
	CustomerID           sql.NullString  `db:"customer_id"`
	CustomerName         string          `db:"customer_name"`
	CustomerPhone        string          `db:"customer_phone"`
	PickupAddress        string          `db:"pickup_address"`
	PickupLatitude       sql.NullFloat64 `db:"pickup_latitude"`
	PickupLongitude      sql.NullFloat64 `db:"pickup_longitude"`
	DeliveryAddress      string          `db:"delivery_address"`
	DeliveryLatitude     sql.NullFloat64 `db:"delivery_latitude"`
	DeliveryLongitude    sql.NullFloat64 `db:"delivery_longitude"`
	MaterialType         string          `db:"material_type"`
	Materials            sql.NullString  `db:"materials"`
	RequiredTruckTypeID  sql.NullString  `db:"required_truck_type_id"`
	RequiredTruckType    sql.NullString  `db:"required_truck_type"`
	PickupTimePreference string          `db:"pickup_time_preference"`
	ScheduledPickupTime  sql.NullTime    `db:"scheduled_pickup_time"`
	QuotedPrice          float64         `db:"quoted_price"`
	EstimatedEarnings    float64         `db:"estimated_earnings"`
	EstimatedDistanceKm  float64         `db:"estimated_distance_km"`
	EstimatedDurationMin int             `db:"estimated_duration_min"`
	Status               string          `db:"status"`
	AssignedDriverID     sql.NullString  `db:"assigned_driver_id"`
	MatchedAt            sql.NullTime    `db:"matched_at"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

// ToTrip converts the row into the domain model
func (d *TripDTO) ToTrip() *TripRequest {
	trip := &TripRequest{
		ID:            d.ID,
		CustomerID:    d.CustomerID.String,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Pickup: TripLocation{
			Address:   d.PickupAddress,
			Latitude:  nullFloat(d.PickupLatitude),
			Longitude: nullFloat(d.PickupLongitude),
		},
		Delivery: TripLocation{
			Address:   d.DeliveryAddress,
			Latitude:  nullFloat(d.DeliveryLatitude),
			Longitude: nullFloat(d.DeliveryLongitude),
		},
		MaterialType:         d.MaterialType,
		Materials:            DecodeJSONList[MaterialItem](d.Materials),
		RequiredTruckTypeID:  d.RequiredTruckTypeID.String,
		RequiredTruckType:    d.RequiredTruckType.String,
		PickupTimePreference: PickupTimePreference(d.PickupTimePreference),
		QuotedPrice:          d.QuotedPrice,
		EstimatedEarnings:    d.EstimatedEarnings,
		EstimatedDistanceKm:  d.EstimatedDistanceKm,
		EstimatedDurationMin: d.EstimatedDurationMin,
		Status:               TripStatus(d.Status),
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
	if d.ScheduledPickupTime.Valid {
		t := d.ScheduledPickupTime.Time
		trip.ScheduledPickupTime = &t
	}
	if d.AssignedDriverID.Valid {
		id := d.AssignedDriverID.String
		trip.AssignedDriverID = &id
	}
	if d.MatchedAt.Valid {
		t := d.MatchedAt.Time
		trip.MatchedAt = &t
	}
	return trip
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// AvailableTrip is a feed entry shown to a driver browsing open trips
type AvailableTrip struct {
	Trip               *TripRequest `json:"trip"`
	DistanceToPickupKm float64      `json:"distance_to_pickup_km"`
	IsCompatible       bool         `json:"is_compatible"`
}
