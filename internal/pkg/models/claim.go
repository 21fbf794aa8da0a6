package models

import "time"

// ClaimOutcome is the result of a driver trying to take a trip
type ClaimOutcome string

const (
	ClaimOutcomeClaimed      ClaimOutcome = "claimed"
	ClaimOutcomeAlreadyTaken ClaimOutcome = "already_taken"
	ClaimOutcomeIncompatible ClaimOutcome = "incompatible"
	ClaimOutcomeNotApproved  ClaimOutcome = "not_approved"
)

// ClaimResult is returned by every claim attempt
type ClaimResult struct {
	TripID        string               `json:"trip_id"`
	DriverID      string               `json:"driver_id"`
	Outcome       ClaimOutcome         `json:"outcome"`
	MatchedAt     *time.Time           `json:"matched_at,omitempty"`
	Compatibility *CompatibilityReport `json:"compatibility,omitempty"`
}

// Claimed reports whether the driver now owns the trip
func (r *ClaimResult) Claimed() bool {
	return r.Outcome == ClaimOutcomeClaimed
}

// CompatibilityReport explains whether a driver's trucks fit a trip
type CompatibilityReport struct {
	TripID            string   `json:"trip_id"`
	DriverID          string   `json:"driver_id"`
	IsCompatible      bool     `json:"is_compatible"`
	RequiredTruckType string   `json:"required_truck_type,omitempty"`
	MatchedCategory   string   `json:"matched_category,omitempty"`
	CategoryMiss      bool     `json:"category_miss"`
	DriverTruckTypes  []string `json:"driver_truck_types"`
	MaterialType      string   `json:"material_type"`
}
