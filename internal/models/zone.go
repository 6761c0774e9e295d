package models

// Zone represents a circular geofence around a depot or customer site
type Zone struct {
	ID                 int64   `json:"id" db:"id"`
	Name               string  `json:"name" db:"name"`
	Kind               string  `json:"kind" db:"kind"` // "depot" or "site"
	CenterLat          float64 `json:"centerLat" db:"center_lat"`
	CenterLon          float64 `json:"centerLon" db:"center_lon"`
	RadiusMeters       float64 `json:"radiusMeters" db:"radius_meters"`
	RequiresHysteresis bool    `json:"requiresHysteresis" db:"requires_hysteresis"`

	// Metadata
	CreatedAt string `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt string `json:"updatedAt,omitempty" db:"updated_at"`
}

// Zone kind constants
const (
	ZoneKindDepot = "depot"
	ZoneKindSite  = "site"
)

// ZoneFilter represents filter parameters for querying zones
type ZoneFilter struct {
	Kind string `form:"kind"`
	Name string `form:"name"`
}
