package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered, embedded schema history. Append only.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_zones",
		SQL: `
			CREATE TABLE IF NOT EXISTS zones (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL UNIQUE,
				kind TEXT NOT NULL DEFAULT 'site',
				center_lat REAL NOT NULL,
				center_lon REAL NOT NULL,
				radius_meters REAL NOT NULL,
				requires_hysteresis INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
	{
		Version: 2,
		Name:    "create_vehicles_drivers",
		SQL: `
			CREATE TABLE IF NOT EXISTS vehicles (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				vehicle_key TEXT NOT NULL UNIQUE,
				registration TEXT NOT NULL,
				enabled INTEGER NOT NULL DEFAULT 1,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE TABLE IF NOT EXISTS drivers (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
		`,
	},
	{
		Version: 3,
		Name:    "create_loads",
		SQL: `
			CREATE TABLE IF NOT EXISTS loads (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				reference TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'pending',
				origin_zone TEXT NOT NULL,
				destination_zone TEXT NOT NULL,
				assigned_vehicle_key TEXT NOT NULL DEFAULT '',
				assigned_driver_id INTEGER NOT NULL DEFAULT 0,
				loading_date INTEGER NOT NULL,
				actual_loading_arrival INTEGER,
				actual_loading_departure INTEGER,
				actual_offloading_arrival INTEGER,
				actual_offloading_departure INTEGER,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_loads_status ON loads(status);
			CREATE INDEX IF NOT EXISTS idx_loads_vehicle ON loads(assigned_vehicle_key);
		`,
	},
	{
		Version: 4,
		Name:    "create_audit_events",
		SQL: `
			CREATE TABLE IF NOT EXISTS audit_events (
				id TEXT PRIMARY KEY,
				load_id INTEGER NOT NULL,
				event_type TEXT NOT NULL,
				zone_name TEXT NOT NULL,
				lat REAL NOT NULL DEFAULT 0,
				lon REAL NOT NULL DEFAULT 0,
				vehicle_registration TEXT NOT NULL DEFAULT '',
				provenance TEXT NOT NULL DEFAULT 'automatic',
				occurred_at INTEGER NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_audit_load ON audit_events(load_id);
		`,
	},
	{
		Version: 5,
		Name:    "seed_depot_zones",
		SQL: `
			INSERT OR IGNORE INTO zones (name, kind, center_lat, center_lon, radius_meters, requires_hysteresis) VALUES
				('JHB Depot', 'depot', -26.2041, 28.0473, 500, 1),
				('CPT Depot', 'depot', -33.9249, 18.4241, 500, 1),
				('DBN Depot', 'depot', -29.8587, 31.0218, 500, 1);
		`,
	},
}

// InitMigrationsTable creates the migrations tracking table
func InitMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of applied migration versions
func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, nil
}

// Migrate applies all pending migrations in order
func Migrate(db *sql.DB) error {
	if err := InitMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}
