package models

// Load represents a shipment moving from an origin zone to a destination zone
type Load struct {
	ID        int64  `json:"id" db:"id"`
	Reference string `json:"reference" db:"reference"`
	Status    string `json:"status" db:"status"`

	OriginZone      string `json:"originZone" db:"origin_zone"`
	DestinationZone string `json:"destinationZone" db:"destination_zone"`

	// Assignment (empty/zero until dispatch assigns the load)
	AssignedVehicleKey string `json:"assignedVehicleKey,omitempty" db:"assigned_vehicle_key"`
	AssignedDriverID   int64  `json:"assignedDriverId,omitempty" db:"assigned_driver_id"`

	LoadingDate int64 `json:"loadingDate" db:"loading_date"` // Unix timestamp

	// Actual times, set at most once each; nil means "not yet confirmed"
	ActualLoadingArrival      *int64 `json:"actualLoadingArrival,omitempty" db:"actual_loading_arrival"`
	ActualLoadingDeparture    *int64 `json:"actualLoadingDeparture,omitempty" db:"actual_loading_departure"`
	ActualOffloadingArrival   *int64 `json:"actualOffloadingArrival,omitempty" db:"actual_offloading_arrival"`
	ActualOffloadingDeparture *int64 `json:"actualOffloadingDeparture,omitempty" db:"actual_offloading_departure"`

	// Metadata
	CreatedAt string `json:"createdAt,omitempty" db:"created_at"`
	UpdatedAt string `json:"updatedAt,omitempty" db:"updated_at"`
}

// Load status constants. Status only ever moves forward through this list.
const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusInTransit = "in-transit"
	StatusDelivered = "delivered"
)

// statusRank orders statuses for the forward-only check
var statusRank = map[string]int{
	StatusPending:   0,
	StatusScheduled: 1,
	StatusInTransit: 2,
	StatusDelivered: 3,
}

// StatusAdvances reports whether moving from to next is a forward transition
func StatusAdvances(from, next string) bool {
	a, ok := statusRank[from]
	b, ok2 := statusRank[next]
	return ok && ok2 && b > a
}

// Active reports whether the load still needs geofence evaluation
func (l *Load) Active() bool {
	return l.Status != StatusDelivered
}

// LoadFilter represents filter parameters for querying loads
type LoadFilter struct {
	Status     string `form:"status"`
	VehicleKey string `form:"vehicleKey"`
	FromDate   int64  `form:"fromDate"`
	ToDate     int64  `form:"toDate"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}

// LoadsResponse represents a paginated response of loads
type LoadsResponse struct {
	Data       []Load `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}
