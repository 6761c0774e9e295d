package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/truckwise/fleetops-backend-go/internal/models"
)

// actualTimeColumns maps transition event types to their loads columns
var actualTimeColumns = map[string]string{
	models.EventLoadingArrival:      "actual_loading_arrival",
	models.EventLoadingDeparture:    "actual_loading_departure",
	models.EventOffloadingArrival:   "actual_offloading_arrival",
	models.EventOffloadingDeparture: "actual_offloading_departure",
}

// LoadRepository handles database operations for loads
type LoadRepository struct {
	db DBTX
}

// NewLoadRepository creates a new load repository
func NewLoadRepository(db *sql.DB) *LoadRepository {
	return &LoadRepository{db: db}
}

// WithTx returns a repository bound to the transaction
func (r *LoadRepository) WithTx(tx *sql.Tx) *LoadRepository {
	return &LoadRepository{db: tx}
}

const loadColumns = `id, reference, status, origin_zone, destination_zone,
	assigned_vehicle_key, assigned_driver_id, loading_date,
	actual_loading_arrival, actual_loading_departure,
	actual_offloading_arrival, actual_offloading_departure,
	created_at, updated_at`

func scanLoad(scanner interface{ Scan(...interface{}) error }) (*models.Load, error) {
	var l models.Load
	var la, ld, oa, od sql.NullInt64
	err := scanner.Scan(&l.ID, &l.Reference, &l.Status, &l.OriginZone, &l.DestinationZone,
		&l.AssignedVehicleKey, &l.AssignedDriverID, &l.LoadingDate,
		&la, &ld, &oa, &od, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if la.Valid {
		l.ActualLoadingArrival = &la.Int64
	}
	if ld.Valid {
		l.ActualLoadingDeparture = &ld.Int64
	}
	if oa.Valid {
		l.ActualOffloadingArrival = &oa.Int64
	}
	if od.Valid {
		l.ActualOffloadingDeparture = &od.Int64
	}
	return &l, nil
}

// GetLoads retrieves loads with filtering and pagination
func (r *LoadRepository) GetLoads(filter models.LoadFilter) ([]models.Load, int64, error) {
	query := "SELECT " + loadColumns + " FROM loads"

	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.VehicleKey != "" {
		conditions = append(conditions, "assigned_vehicle_key = ?")
		args = append(args, filter.VehicleKey)
	}
	if filter.FromDate > 0 {
		conditions = append(conditions, "loading_date >= ?")
		args = append(args, filter.FromDate)
	}
	if filter.ToDate > 0 {
		conditions = append(conditions, "loading_date <= ?")
		args = append(args, filter.ToDate)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// Get total count
	countQuery := "SELECT COUNT(*) FROM loads"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count loads: %w", err)
	}

	// Pagination
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 100
	}
	query += " ORDER BY loading_date ASC, id ASC LIMIT ? OFFSET ?"
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query loads: %w", err)
	}
	defer rows.Close()

	var loads []models.Load
	for rows.Next() {
		l, err := scanLoad(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan load: %w", err)
		}
		loads = append(loads, *l)
	}

	return loads, total, nil
}

// GetLoadByID retrieves a single load, or nil when it does not exist
func (r *LoadRepository) GetLoadByID(id int64) (*models.Load, error) {
	row := r.db.QueryRow("SELECT "+loadColumns+" FROM loads WHERE id = ?", id)
	l, err := scanLoad(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query load %d: %w", id, err)
	}
	return l, nil
}

// GetActiveLoads retrieves all loads that are not yet delivered,
// ordered by loading date so callers can gate per vehicle deterministically
func (r *LoadRepository) GetActiveLoads() ([]models.Load, error) {
	rows, err := r.db.Query("SELECT " + loadColumns + " FROM loads WHERE status != 'delivered' ORDER BY loading_date ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query active loads: %w", err)
	}
	defer rows.Close()

	var loads []models.Load
	for rows.Next() {
		l, err := scanLoad(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan load: %w", err)
		}
		loads = append(loads, *l)
	}

	return loads, nil
}

// CreateLoad inserts a new load and returns its id
func (r *LoadRepository) CreateLoad(l *models.Load) (int64, error) {
	if l.Status == "" {
		l.Status = models.StatusPending
	}
	res, err := r.db.Exec(`INSERT INTO loads
		(reference, status, origin_zone, destination_zone, assigned_vehicle_key, assigned_driver_id, loading_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.Reference, l.Status, l.OriginZone, l.DestinationZone,
		l.AssignedVehicleKey, l.AssignedDriverID, l.LoadingDate)
	if err != nil {
		return 0, fmt.Errorf("failed to insert load: %w", err)
	}
	return res.LastInsertId()
}

// AssignVehicle sets the assigned vehicle and driver for a load
func (r *LoadRepository) AssignVehicle(loadID int64, vehicleKey string, driverID int64) error {
	_, err := r.db.Exec(`UPDATE loads SET assigned_vehicle_key = ?, assigned_driver_id = ?,
		updated_at = CURRENT_TIMESTAMP WHERE id = ?`, vehicleKey, driverID, loadID)
	if err != nil {
		return fmt.Errorf("failed to assign vehicle to load %d: %w", loadID, err)
	}
	return nil
}

// SetActualTime sets one actual-time field, but only while it is still unset.
// This IS NULL guard is the idempotency boundary for automatic detection:
// a transition replayed across ticks commits at most once.
// Returns false when the field was already set.
func (r *LoadRepository) SetActualTime(loadID int64, eventType string, timestamp int64) (bool, error) {
	col, ok := actualTimeColumns[eventType]
	if !ok {
		return false, fmt.Errorf("unknown event type %q", eventType)
	}
	res, err := r.db.Exec(fmt.Sprintf(`UPDATE loads SET %s = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND %s IS NULL`, col, col), timestamp, loadID)
	if err != nil {
		return false, fmt.Errorf("failed to set %s on load %d: %w", col, loadID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

// AdvanceStatus moves a load's status forward. Regressions are rejected in SQL
// by only updating rows whose current status precedes the new one.
func (r *LoadRepository) AdvanceStatus(loadID int64, newStatus string) error {
	var preceding []string
	for _, s := range []string{models.StatusPending, models.StatusScheduled, models.StatusInTransit} {
		if models.StatusAdvances(s, newStatus) {
			preceding = append(preceding, s)
		}
	}
	if len(preceding) == 0 {
		return fmt.Errorf("cannot advance to status %q", newStatus)
	}

	placeholders := strings.Repeat("?,", len(preceding))
	placeholders = placeholders[:len(placeholders)-1]
	args := []interface{}{newStatus, loadID}
	for _, s := range preceding {
		args = append(args, s)
	}

	_, err := r.db.Exec(fmt.Sprintf(`UPDATE loads SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status IN (%s)`, placeholders), args...)
	if err != nil {
		return fmt.Errorf("failed to advance status of load %d: %w", loadID, err)
	}
	return nil
}
