package detector

import (
	"time"
)

// Dwell thresholds. A vehicle sitting below dwellMaxSpeedKmH for
// dwellMinDuration inside its destination zone is considered arrived even
// when no boundary edge was ever observed.
const (
	dwellMaxSpeedKmH = 1.0
	dwellMinDuration = 5 * time.Minute
)

// updateDwell advances the dwell tracker for a load currently inside its
// destination zone and reports whether the stationary threshold has been
// reached. Any sample at or above the speed threshold restarts the clock:
// the five minutes must be continuous, though skipped samples between polls
// are tolerated because only observed readings count.
func (s *State) updateDwell(loadID int64, speedKmH float64, now time.Time) bool {
	d, ok := s.dwell[loadID]
	if !ok {
		d = &dwellState{EnteredAt: now}
		s.dwell[loadID] = d
	}

	if speedKmH >= dwellMaxSpeedKmH {
		d.StationarySince = nil
		return false
	}

	if d.StationarySince == nil {
		t := now
		d.StationarySince = &t
		return false
	}

	return now.Sub(*d.StationarySince) >= dwellMinDuration
}

// resetDwell forgets the dwell tracker, used when the vehicle leaves the
// destination zone before the threshold is reached
func (s *State) resetDwell(loadID int64) {
	delete(s.dwell, loadID)
}
