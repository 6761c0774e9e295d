// Package detector infers discrete shipment transitions from noisy, polled
// vehicle positions. One tick takes the latest position per vehicle, the
// active loads and the zone registry, and produces the transition events that
// are ready to dispatch; all state lives in a detector-owned State object so
// the whole pipeline is testable without a scheduler or database.
package detector

import (
	"log"
	"time"

	"github.com/truckwise/fleetops-backend-go/internal/models"
)

// Detector owns the ephemeral detection state across ticks
type Detector struct {
	state *State
}

// New creates a detector with fresh state
func New() *Detector {
	return &Detector{state: NewState()}
}

// Tick evaluates one polling cycle. Loads are gated to one per vehicle,
// then each gated load is checked against the zone relevant to its status.
// The returned events are candidates: the caller dispatches them and calls
// Commit for each one that was applied successfully.
func (d *Detector) Tick(now time.Time, positions map[string]models.VehiclePosition, loads []models.Load, zones map[string]models.Zone) []models.TransitionEvent {
	var events []models.TransitionEvent
	for _, l := range Gate(loads) {
		if ev := d.evaluate(now, l, positions, zones); ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}

// Commit records that an emitted event was successfully applied
func (d *Detector) Commit(ev models.TransitionEvent) {
	d.state.Commit(ev)
}

func (d *Detector) evaluate(now time.Time, l models.Load, positions map[string]models.VehiclePosition, zones map[string]models.Zone) *models.TransitionEvent {
	if l.AssignedVehicleKey == "" {
		return nil
	}
	pos, ok := positions[l.AssignedVehicleKey]
	if !ok {
		// No usable sample this tick (vehicle off the feed or null coordinates)
		return nil
	}

	switch l.Status {
	case models.StatusPending, models.StatusScheduled:
		zone, ok := zones[l.OriginZone]
		if !ok {
			log.Printf("[Detector] load %d: origin zone %q not in registry, skipping", l.ID, l.OriginZone)
			return nil
		}
		return d.evaluateOrigin(now, &l, &zone, pos)
	case models.StatusInTransit:
		zone, ok := zones[l.DestinationZone]
		if !ok {
			log.Printf("[Detector] load %d: destination zone %q not in registry, skipping", l.ID, l.DestinationZone)
			return nil
		}
		return d.evaluateDestination(now, &l, &zone, pos)
	}

	return nil
}
