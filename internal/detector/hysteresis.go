package detector

import (
	"github.com/truckwise/fleetops-backend-go/internal/models"
)

// hysteresisConfirmCount is the number of consecutive inside reads required
// before a boundary entry is believed on a hysteresis zone
const hysteresisConfirmCount = 2

// stableInside turns a raw containment read into a stable one. Zones flagged
// requires_hysteresis (depots, high-traffic sites near other geofences) only
// confirm entry after hysteresisConfirmCount consecutive inside reads; a
// single outside read resets the counter and registers immediately, so
// departure detection is never delayed.
func (s *State) stableInside(vehicleKey string, zone *models.Zone, raw bool) bool {
	if !zone.RequiresHysteresis {
		return raw
	}

	k := hysteresisKey{VehicleKey: vehicleKey, ZoneName: zone.Name}
	if !raw {
		delete(s.hysteresis, k)
		return false
	}

	s.hysteresis[k]++
	return s.hysteresis[k] >= hysteresisConfirmCount
}
