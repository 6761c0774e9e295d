package repository

import (
	"database/sql"
	"fmt"

	"github.com/truckwise/fleetops-backend-go/internal/models"
)

// VehicleRepository handles database operations for vehicles and drivers
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// GetVehicles retrieves all vehicles
func (r *VehicleRepository) GetVehicles() ([]models.Vehicle, error) {
	rows, err := r.db.Query("SELECT id, vehicle_key, registration, enabled, created_at FROM vehicles ORDER BY registration ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Key, &v.Registration, &v.Enabled, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

// GetVehicleByKey retrieves a single vehicle, or nil when it does not exist
func (r *VehicleRepository) GetVehicleByKey(key string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := r.db.QueryRow("SELECT id, vehicle_key, registration, enabled, created_at FROM vehicles WHERE vehicle_key = ?", key).
		Scan(&v.ID, &v.Key, &v.Registration, &v.Enabled, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle %q: %w", key, err)
	}
	return &v, nil
}

// UpsertVehicle records a vehicle seen on the tracking feed
func (r *VehicleRepository) UpsertVehicle(key, registration string, enabled bool) error {
	_, err := r.db.Exec(`INSERT INTO vehicles (vehicle_key, registration, enabled) VALUES (?, ?, ?)
		ON CONFLICT(vehicle_key) DO UPDATE SET registration = excluded.registration, enabled = excluded.enabled`,
		key, registration, enabled)
	if err != nil {
		return fmt.Errorf("failed to upsert vehicle %q: %w", key, err)
	}
	return nil
}

// GetDrivers retrieves all drivers
func (r *VehicleRepository) GetDrivers() ([]models.Driver, error) {
	rows, err := r.db.Query("SELECT id, name, created_at FROM drivers ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query drivers: %w", err)
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// CreateDriver inserts a new driver and returns its id
func (r *VehicleRepository) CreateDriver(d *models.Driver) (int64, error) {
	res, err := r.db.Exec("INSERT INTO drivers (name) VALUES (?)", d.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert driver: %w", err)
	}
	return res.LastInsertId()
}
