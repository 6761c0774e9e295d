package models

import "time"

// VehiclePosition is the latest polled sample for one tracked vehicle.
// Positions are latest-only: each poll overwrites the previous sample.
type VehiclePosition struct {
	VehicleKey string    `json:"vehicleKey"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	SpeedKmH   float64   `json:"speedKmH"`
	InTrip     bool      `json:"inTrip"`
	ObservedAt time.Time `json:"observedAt"`
}

// Vehicle represents a tracked asset in the fleet
type Vehicle struct {
	ID           int64  `json:"id" db:"id"`
	Key          string `json:"key" db:"vehicle_key"`
	Registration string `json:"registration" db:"registration"`
	Enabled      bool   `json:"enabled" db:"enabled"`

	CreatedAt string `json:"createdAt,omitempty" db:"created_at"`
}

// Driver represents a driver that can be assigned to a load
type Driver struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	CreatedAt string `json:"createdAt,omitempty" db:"created_at"`
}
