package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/truckwise/fleetops-backend-go/internal/models"
)

// ZoneRepository handles database operations for geofence zones
type ZoneRepository struct {
	db *sql.DB
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *sql.DB) *ZoneRepository {
	return &ZoneRepository{db: db}
}

const zoneColumns = `id, name, kind, center_lat, center_lon, radius_meters, requires_hysteresis, created_at, updated_at`

func scanZone(scanner interface{ Scan(...interface{}) error }) (*models.Zone, error) {
	var z models.Zone
	err := scanner.Scan(&z.ID, &z.Name, &z.Kind, &z.CenterLat, &z.CenterLon,
		&z.RadiusMeters, &z.RequiresHysteresis, &z.CreatedAt, &z.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &z, nil
}

// GetZones retrieves zones with optional filtering
func (r *ZoneRepository) GetZones(filter models.ZoneFilter) ([]models.Zone, error) {
	query := "SELECT " + zoneColumns + " FROM zones"

	var conditions []string
	var args []interface{}

	if filter.Kind != "" {
		conditions = append(conditions, "kind = ?")
		args = append(args, filter.Kind)
	}
	if filter.Name != "" {
		conditions = append(conditions, "name = ?")
		args = append(args, filter.Name)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	var zones []models.Zone
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, *z)
	}

	return zones, nil
}

// GetZoneByName retrieves a single zone by name, or nil when it does not exist
func (r *ZoneRepository) GetZoneByName(name string) (*models.Zone, error) {
	row := r.db.QueryRow("SELECT "+zoneColumns+" FROM zones WHERE name = ?", name)
	z, err := scanZone(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query zone %q: %w", name, err)
	}
	return z, nil
}

// CreateZone inserts a new zone and returns its id
func (r *ZoneRepository) CreateZone(z *models.Zone) (int64, error) {
	if z.Kind == "" {
		z.Kind = models.ZoneKindSite
	}
	res, err := r.db.Exec(`INSERT INTO zones (name, kind, center_lat, center_lon, radius_meters, requires_hysteresis)
		VALUES (?, ?, ?, ?, ?, ?)`,
		z.Name, z.Kind, z.CenterLat, z.CenterLon, z.RadiusMeters, z.RequiresHysteresis)
	if err != nil {
		return 0, fmt.Errorf("failed to insert zone: %w", err)
	}
	return res.LastInsertId()
}

// UpdateZone updates an existing zone
func (r *ZoneRepository) UpdateZone(z *models.Zone) error {
	_, err := r.db.Exec(`UPDATE zones SET name = ?, kind = ?, center_lat = ?, center_lon = ?,
		radius_meters = ?, requires_hysteresis = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		z.Name, z.Kind, z.CenterLat, z.CenterLon, z.RadiusMeters, z.RequiresHysteresis, z.ID)
	if err != nil {
		return fmt.Errorf("failed to update zone %d: %w", z.ID, err)
	}
	return nil
}

// DeleteZone removes a zone by id
func (r *ZoneRepository) DeleteZone(id int64) error {
	_, err := r.db.Exec("DELETE FROM zones WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete zone %d: %w", id, err)
	}
	return nil
}
