package detector

import (
	"time"

	"github.com/truckwise/fleetops-backend-go/internal/models"
	"github.com/truckwise/fleetops-backend-go/internal/spatial"
)

// eventStatusAdvance names the status advance coupled to an event type.
// Arrival at the origin is what schedules a pending load; this is an
// intentional coupling, kept explicit here instead of buried in a handler.
// The advance only applies when the load is currently in the From status,
// so a backfilled event never moves status backwards or skips ahead.
var eventStatusAdvance = map[string]struct{ From, To string }{
	models.EventLoadingArrival:      {From: models.StatusPending, To: models.StatusScheduled},
	models.EventLoadingDeparture:    {From: models.StatusScheduled, To: models.StatusInTransit},
	models.EventOffloadingDeparture: {From: models.StatusInTransit, To: models.StatusDelivered},
}

// evaluateOrigin runs the origin-zone half of the state machine for loads
// that are pending or scheduled
func (d *Detector) evaluateOrigin(now time.Time, l *models.Load, zone *models.Zone, pos models.VehiclePosition) *models.TransitionEvent {
	raw := spatial.WithinRadius(pos.Lat, pos.Lon, zone.CenterLat, zone.CenterLon, zone.RadiusMeters)
	inside := d.state.stableInside(l.AssignedVehicleKey, zone, raw)
	wasInside := d.state.hasEntry(l.ID, roleOrigin)

	if inside {
		if !wasInside {
			d.state.markEntry(l.ID, roleOrigin, now)
		}
		// Scheduling is keyed on "inside with arrival unconfirmed", not on a
		// strict rising edge, so a load created while its truck is already
		// parked at the depot still schedules.
		if l.Status == models.StatusPending {
			if l.AssignedDriverID == 0 || l.ActualLoadingArrival != nil {
				return nil
			}
			return d.emit(now, l, zone, pos, models.EventLoadingArrival)
		}
		return nil
	}

	if !wasInside {
		return nil
	}

	// Falling edge out of the origin. A pending load without a driver has no
	// crew to attribute the visit to; conclude it silently.
	if l.Status == models.StatusPending && l.AssignedDriverID == 0 {
		d.state.clearEntry(l.ID, roleOrigin)
		return nil
	}

	// Arrival is backfilled before departure when both are missing. The entry
	// marker is held until the departure commits, so the departure fires on a
	// later tick once the arrival is in place.
	if l.ActualLoadingArrival == nil {
		return d.emit(now, l, zone, pos, models.EventLoadingArrival)
	}
	if l.ActualLoadingDeparture == nil {
		return d.emit(now, l, zone, pos, models.EventLoadingDeparture)
	}

	// Nothing left to record for this visit; release the marker.
	d.state.clearEntry(l.ID, roleOrigin)
	return nil
}

// evaluateDestination runs the destination-zone half of the state machine
// for in-transit loads
func (d *Detector) evaluateDestination(now time.Time, l *models.Load, zone *models.Zone, pos models.VehiclePosition) *models.TransitionEvent {
	raw := spatial.WithinRadius(pos.Lat, pos.Lon, zone.CenterLat, zone.CenterLon, zone.RadiusMeters)
	inside := d.state.stableInside(l.AssignedVehicleKey, zone, raw)
	wasInside := d.state.hasEntry(l.ID, roleDestination)

	if inside {
		if !wasInside {
			d.state.markEntry(l.ID, roleDestination, now)
		}
		dwellReached := d.state.updateDwell(l.ID, pos.SpeedKmH, now)
		if l.ActualOffloadingArrival != nil {
			return nil
		}
		// Rising edge, or the dwell fallback for entries the edge detection
		// never saw: sustained low speed inside the zone counts as arrival.
		if !wasInside || dwellReached {
			return d.emit(now, l, zone, pos, models.EventOffloadingArrival)
		}
		return nil
	}

	d.state.resetDwell(l.ID)

	if !wasInside {
		return nil
	}

	if l.ActualOffloadingArrival == nil {
		return d.emit(now, l, zone, pos, models.EventOffloadingArrival)
	}
	if l.ActualOffloadingDeparture == nil {
		return d.emit(now, l, zone, pos, models.EventOffloadingDeparture)
	}

	d.state.clearEntry(l.ID, roleDestination)
	return nil
}

// emit builds a transition event unless the per-day deduplicator has already
// seen this (load, event type) today
func (d *Detector) emit(now time.Time, l *models.Load, zone *models.Zone, pos models.VehiclePosition, eventType string) *models.TransitionEvent {
	if d.state.processedToday(l.ID, eventType, now.Format("2006-01-02")) {
		return nil
	}

	var newStatus string
	if adv, ok := eventStatusAdvance[eventType]; ok && adv.From == l.Status {
		newStatus = adv.To
	}

	return &models.TransitionEvent{
		LoadID:     l.ID,
		EventType:  eventType,
		Timestamp:  now,
		VehicleKey: l.AssignedVehicleKey,
		ZoneName:   zone.Name,
		Lat:        pos.Lat,
		Lon:        pos.Lon,
		NewStatus:  newStatus,
		Completed:  eventType == models.EventOffloadingDeparture && newStatus == models.StatusDelivered,
	}
}
