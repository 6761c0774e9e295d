package models

import "time"

// Transition event types emitted by the geofence detector
const (
	EventLoadingArrival      = "loading_arrival"
	EventLoadingDeparture    = "loading_departure"
	EventOffloadingArrival   = "offloading_arrival"
	EventOffloadingDeparture = "offloading_departure"
)

// Provenance markers for actual-time fields
const (
	ProvenanceAutomatic = "automatic"
	ProvenanceManual    = "manual"
)

// TransitionEvent is a confirmed geofence transition awaiting dispatch.
// NewStatus is empty when the event does not advance the load's status.
type TransitionEvent struct {
	LoadID              int64     `json:"loadId"`
	EventType           string    `json:"eventType"`
	Timestamp           time.Time `json:"timestamp"`
	VehicleKey          string    `json:"vehicleKey"`
	VehicleRegistration string    `json:"vehicleRegistration"`
	ZoneName            string    `json:"zoneName"`
	Lat                 float64   `json:"lat"`
	Lon                 float64   `json:"lon"`
	NewStatus           string    `json:"newStatus,omitempty"`
	Completed           bool      `json:"completed"`
}

// AuditEvent is the persisted record of an applied transition
type AuditEvent struct {
	ID                  string  `json:"id" db:"id"`
	LoadID              int64   `json:"loadId" db:"load_id"`
	EventType           string  `json:"eventType" db:"event_type"`
	ZoneName            string  `json:"zoneName" db:"zone_name"`
	Lat                 float64 `json:"lat" db:"lat"`
	Lon                 float64 `json:"lon" db:"lon"`
	VehicleRegistration string  `json:"vehicleRegistration" db:"vehicle_registration"`
	Provenance          string  `json:"provenance" db:"provenance"`
	OccurredAt          int64   `json:"occurredAt" db:"occurred_at"` // Unix timestamp
	CreatedAt           string  `json:"createdAt,omitempty" db:"created_at"`
}

// AuditFilter represents filter parameters for querying audit events
type AuditFilter struct {
	LoadID    int64  `form:"loadId"`
	EventType string `form:"eventType"`
	StartTime int64  `form:"startTime"`
	EndTime   int64  `form:"endTime"`
	Page      int    `form:"page"`
	PageSize  int    `form:"pageSize"`
}
