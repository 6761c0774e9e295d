package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/truckwise/fleetops-backend-go/internal/models"
)

// AuditRepository handles database operations for transition audit events
type AuditRepository struct {
	db DBTX
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// WithTx returns a repository bound to the transaction
func (r *AuditRepository) WithTx(tx *sql.Tx) *AuditRepository {
	return &AuditRepository{db: tx}
}

// InsertEvent writes an audit row. The id is assigned here when empty.
func (r *AuditRepository) InsertEvent(ev *models.AuditEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Provenance == "" {
		ev.Provenance = models.ProvenanceAutomatic
	}
	_, err := r.db.Exec(`INSERT INTO audit_events
		(id, load_id, event_type, zone_name, lat, lon, vehicle_registration, provenance, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.LoadID, ev.EventType, ev.ZoneName, ev.Lat, ev.Lon,
		ev.VehicleRegistration, ev.Provenance, ev.OccurredAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", err)
	}
	return nil
}

// GetEvents retrieves audit events with filtering and pagination
func (r *AuditRepository) GetEvents(filter models.AuditFilter) ([]models.AuditEvent, int64, error) {
	query := `SELECT id, load_id, event_type, zone_name, lat, lon, vehicle_registration, provenance, occurred_at, created_at
		FROM audit_events`

	var conditions []string
	var args []interface{}

	if filter.LoadID > 0 {
		conditions = append(conditions, "load_id = ?")
		args = append(args, filter.LoadID)
	}
	if filter.EventType != "" {
		conditions = append(conditions, "event_type = ?")
		args = append(args, filter.EventType)
	}
	if filter.StartTime > 0 {
		conditions = append(conditions, "occurred_at >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "occurred_at <= ?")
		args = append(args, filter.EndTime)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM audit_events"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count audit events: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 100
	}
	query += " ORDER BY occurred_at DESC LIMIT ? OFFSET ?"
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audit events: %w", err)
	}
	defer rows.Close()

	var events []models.AuditEvent
	for rows.Next() {
		var ev models.AuditEvent
		if err := rows.Scan(&ev.ID, &ev.LoadID, &ev.EventType, &ev.ZoneName, &ev.Lat, &ev.Lon,
			&ev.VehicleRegistration, &ev.Provenance, &ev.OccurredAt, &ev.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit event: %w", err)
		}
		events = append(events, ev)
	}

	return events, total, nil
}
