package repository

import (
	"database/sql"
	"fmt"
)

// StatsRepository handles aggregate queries for delivery performance
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountByStatus returns the number of loads in each status
func (r *StatsRepository) CountByStatus() (map[string]int64, error) {
	rows, err := r.db.Query("SELECT status, COUNT(*) FROM loads GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("failed to count loads by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}

// TransitDurations returns loading-departure to offloading-arrival durations
// in seconds for loads whose both endpoints were confirmed in the window
func (r *StatsRepository) TransitDurations(from, to int64) ([]float64, error) {
	query := `SELECT actual_offloading_arrival - actual_loading_departure
		FROM loads
		WHERE actual_loading_departure IS NOT NULL
			AND actual_offloading_arrival IS NOT NULL
			AND actual_offloading_arrival >= actual_loading_departure`
	var args []interface{}
	if from > 0 {
		query += " AND actual_loading_departure >= ?"
		args = append(args, from)
	}
	if to > 0 {
		query += " AND actual_offloading_arrival <= ?"
		args = append(args, to)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transit durations: %w", err)
	}
	defer rows.Close()

	var durations []float64
	for rows.Next() {
		var d float64
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan duration: %w", err)
		}
		durations = append(durations, d)
	}

	return durations, nil
}

// AutomaticEventCounts returns per-event-type counts of automatically
// detected transitions in the window
func (r *StatsRepository) AutomaticEventCounts(from, to int64) (map[string]int64, error) {
	query := "SELECT event_type, COUNT(*) FROM audit_events WHERE provenance = 'automatic'"
	var args []interface{}
	if from > 0 {
		query += " AND occurred_at >= ?"
		args = append(args, from)
	}
	if to > 0 {
		query += " AND occurred_at <= ?"
		args = append(args, to)
	}
	query += " GROUP BY event_type"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var eventType string
		var count int64
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan event count: %w", err)
		}
		counts[eventType] = count
	}

	return counts, nil
}
