package detector

import (
	"time"

	"github.com/truckwise/fleetops-backend-go/internal/models"
)

// Zone roles a load interacts with
const (
	roleOrigin      = "origin"
	roleDestination = "dest"
)

type hysteresisKey struct {
	VehicleKey string
	ZoneName   string
}

type entryKey struct {
	LoadID int64
	Role   string
}

type dedupKey struct {
	LoadID    int64
	EventType string
	Date      string // calendar date of detection, YYYY-MM-DD
}

// dwellState tracks sustained low speed inside a load's destination zone
type dwellState struct {
	EnteredAt       time.Time
	StationarySince *time.Time
}

// State is the ephemeral detection state owned by a single control loop.
// It is not safe for concurrent use and is intentionally lost on restart:
// idempotency is enforced by the unset-field check at the data layer, so a
// fresh State can at worst re-evaluate a transition, never re-commit it.
type State struct {
	hysteresis map[hysteresisKey]int
	entries    map[entryKey]time.Time
	dwell      map[int64]*dwellState
	processed  map[dedupKey]bool
}

// NewState creates empty detection state
func NewState() *State {
	return &State{
		hysteresis: make(map[hysteresisKey]int),
		entries:    make(map[entryKey]time.Time),
		dwell:      make(map[int64]*dwellState),
		processed:  make(map[dedupKey]bool),
	}
}

func (s *State) hasEntry(loadID int64, role string) bool {
	_, ok := s.entries[entryKey{LoadID: loadID, Role: role}]
	return ok
}

func (s *State) markEntry(loadID int64, role string, at time.Time) {
	s.entries[entryKey{LoadID: loadID, Role: role}] = at
}

func (s *State) clearEntry(loadID int64, role string) {
	delete(s.entries, entryKey{LoadID: loadID, Role: role})
}

// processedToday reports whether this (load, event type) pair was already
// committed on the given calendar date
func (s *State) processedToday(loadID int64, eventType, date string) bool {
	return s.processed[dedupKey{LoadID: loadID, EventType: eventType, Date: date}]
}

// Commit records a successfully dispatched event. It marks the per-day dedup
// key, releases the entry marker once its departure event has fired, drops the
// dwell tracker once arrival is confirmed, and purges everything the load owns
// on delivery. Nothing here runs for failed dispatches: leaving the markers
// untouched is what makes the next tick re-attempt the same transition.
func (s *State) Commit(ev models.TransitionEvent) {
	date := ev.Timestamp.Format("2006-01-02")
	s.processed[dedupKey{LoadID: ev.LoadID, EventType: ev.EventType, Date: date}] = true

	switch ev.EventType {
	case models.EventLoadingDeparture:
		s.clearEntry(ev.LoadID, roleOrigin)
	case models.EventOffloadingArrival:
		delete(s.dwell, ev.LoadID)
	case models.EventOffloadingDeparture:
		s.clearEntry(ev.LoadID, roleDestination)
	}

	if ev.Completed {
		s.PurgeLoad(ev.LoadID)
	}
}

// PurgeLoad drops every ephemeral marker belonging to a load. Hysteresis
// counters are vehicle/zone-scoped, not load-scoped, and survive.
func (s *State) PurgeLoad(loadID int64) {
	s.clearEntry(loadID, roleOrigin)
	s.clearEntry(loadID, roleDestination)
	delete(s.dwell, loadID)
	for k := range s.processed {
		if k.LoadID == loadID {
			delete(s.processed, k)
		}
	}
}
