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
	"github.com/lib/pq"
)

const tripColumns = `t.id, t.customer_id, t.customer_name, t.customer_phone,
	t.pickup_address, t.pickup_latitude, t.pickup_longitude,
	t.delivery_address, t.delivery_latitude, t.delivery_longitude,
	t.material_type, t.materials, t.required_truck_type_id, tt.name AS required_truck_type,
	t.pickup_time_preference, t.scheduled_pickup_time, t.quoted_price, t.estimated_earnings,
	t.estimated_distance_km, t.estimated_duration_min, t.status, t.assigned_driver_id,
	t.matched_at, t.created_at, t.updated_at`

const tripFrom = `FROM trip_requests t LEFT JOIN truck_types tt ON tt.id = t.required_truck_type_id`

// TripRepo implements trips.TripRepo on PostgreSQL
type TripRepo struct {
	db *sqlx.DB
}

// NewTripRepo creates a new trip repository
func NewTripRepo(db *sqlx.DB) *TripRepo {
	return &TripRepo{db: db}
}

// GetTrip reads a trip by id
func (r *TripRepo) GetTrip(ctx context.Context, tripID string) (*models.TripRequest, error) {
	query := `SELECT ` + tripColumns + ` ` + tripFrom + ` WHERE t.id = $1`

	var dto models.TripDTO
	if err := r.db.GetContext(ctx, &dto, query, tripID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, trips.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return dto.ToTrip(), nil
}

// GetTripsByIDs reads several trips. Results follow the order of tripIDs and
// unknown ids are skipped.
func (r *TripRepo) GetTripsByIDs(ctx context.Context, tripIDs []string) ([]*models.TripRequest, error) {
	if len(tripIDs) == 0 {
		return []*models.TripRequest{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+tripColumns+` `+tripFrom+` WHERE t.id IN (?)`, tripIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build trips query: %w", err)
	}

	var rows []models.TripDTO
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get trips: %w", err)
	}

	byID := make(map[string]*models.TripRequest, len(rows))
	for i := range rows {
		byID[rows[i].ID] = rows[i].ToTrip()
	}

	result := make([]*models.TripRequest, 0, len(rows))
	for _, id := range tripIDs {
		if trip, ok := byID[id]; ok {
			result = append(result, trip)
			delete(byID, id)
		}
	}
	return result, nil
}

// ListPendingTrips lists open trips, oldest first. A limit of zero or less
// leaves the result uncapped.
func (r *TripRepo) ListPendingTrips(ctx context.Context, prefixes []string, limit int) ([]*models.TripRequest, error) {
	query := `SELECT ` + tripColumns + ` ` + tripFrom + `
		WHERE t.status = $1 AND t.assigned_driver_id IS NULL`
	args := []interface{}{string(models.TripStatusPending)}

	if len(prefixes) > 0 {
		query += fmt.Sprintf(` AND left(t.pickup_geohash, $%d) = ANY($%d)`, len(args)+1, len(args)+2)
		args = append(args, len(prefixes[0]), pq.Array(prefixes))
	}
	query += ` ORDER BY t.created_at ASC`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	var rows []models.TripDTO
	err := r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending trips: %w", err)
	}

	result := make([]*models.TripRequest, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].ToTrip())
	}
	return result, nil
}

// ClaimTrip runs the conditional assignment and the driver status change in
// one transaction. Zero affected rows means the trip was no longer open.
func (r *TripRepo) ClaimTrip(ctx context.Context, tripID, driverID string, matchedAt time.Time) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE trip_requests
		SET status = $1, assigned_driver_id = $2, matched_at = $3, updated_at = $3
		WHERE id = $4 AND status = $5 AND assigned_driver_id IS NULL`,
		string(models.TripStatusMatched), driverID, matchedAt, tripID, string(models.TripStatusPending))
	if err != nil {
		return false, fmt.Errorf("failed to claim trip: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	if err := updateDriverStatus(ctx, tx, driverID, models.DriverStatusBusy, matchedAt); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit claim: %w", err)
	}
	return true, nil
}
