package models

import (
	"database/sql"
	"time"
)

// ApprovalStatus is the back-office verdict on a driver's documents
type ApprovalStatus string

const (
	ApprovalPending     ApprovalStatus = "pending"
	ApprovalApproved    ApprovalStatus = "approved"
	ApprovalRejected    ApprovalStatus = "rejected"
	ApprovalUnderReview ApprovalStatus = "under_review"
)

// DriverStatus is the driver's working state
type DriverStatus string

const (
	DriverStatusOffline   DriverStatus = "offline"
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
)

// DriverProfile holds the parts of a driver record matching cares about
type DriverProfile struct {
	UserID              string         `json:"user_id"`
	FullName            string         `json:"full_name"`
	PreferredTruckTypes []string       `json:"preferred_truck_types"`
	IsApproved          bool           `json:"is_approved"`
	ApprovalStatus      ApprovalStatus `json:"approval_status"`
	IsAvailable         bool           `json:"is_available"`
	Status              DriverStatus   `json:"status"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// CanClaim reports whether the driver passed verification
func (d *DriverProfile) CanClaim() bool {
	return d.IsApproved && d.ApprovalStatus == ApprovalApproved
}

// DriverProfileDTO is the row shape of driver_profiles
type DriverProfileDTO struct {
	UserID              string         `db:"user_id"`
	FullName            string         `db:"full_name"`
	PreferredTruckTypes sql.NullString `db:"preferred_truck_types"`
	IsApproved          bool           `db:"is_approved"`
	ApprovalStatus      string         `db:"approval_status"`
	IsAvailable         bool           `db:"is_available"`
	Status              string         `db:"status"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

// ToProfile converts the row into the domain model
func (d *DriverProfileDTO) ToProfile() *DriverProfile {
	return &DriverProfile{
		UserID:              d.UserID,
		FullName:            d.FullName,
		PreferredTruckTypes: DecodeJSONList[string](d.PreferredTruckTypes),
		IsApproved:          d.IsApproved,
		ApprovalStatus:      ApprovalStatus(d.ApprovalStatus),
		IsAvailable:         d.IsAvailable,
		Status:              DriverStatus(d.Status),
		UpdatedAt:           d.UpdatedAt,
	}
}
