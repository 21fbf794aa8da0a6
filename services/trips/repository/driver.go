package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/internal/pkg/models"
	"github.com/lailaduaibes/Building-Materials-Uber-APP-sub001/services/trips"
)

// DriverRepo implements trips.DriverRepo on PostgreSQL
type DriverRepo struct {
	db *sqlx.DB
}

// NewDriverRepo creates a new driver repository
func NewDriverRepo(db *sqlx.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

// GetDriverProfile reads a driver profile by user id
func (r *DriverRepo) GetDriverProfile(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	query := `
		SELECT user_id, full_name, preferred_truck_types, is_approved, approval_status,
			is_available, status, updated_at
		FROM driver_profiles
		WHERE user_id = $1`

	var dto models.DriverProfileDTO
	if err := r.db.GetContext(ctx, &dto, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver profile: %w", err)
	}

	return dto.ToProfile(), nil
}

// UpdateDriverStatus sets the driver's working status
func (r *DriverRepo) UpdateDriverStatus(ctx context.Context, driverID string, status models.DriverStatus) error {
	return updateDriverStatus(ctx, r.db, driverID, status, time.Now())
}

func updateDriverStatus(ctx context.Context, execer sqlx.ExecerContext, driverID string, status models.DriverStatus, at time.Time) error {
	result, err := execer.ExecContext(ctx, `
		UPDATE driver_profiles
		SET status = $1, is_available = $2, updated_at = $3
		WHERE user_id = $4`,
		string(status), status == models.DriverStatusAvailable, at, driverID)
	if err != nil {
		return fmt.Errorf("failed to update driver status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return trips.ErrDriverNotFound
	}
	return nil
}
