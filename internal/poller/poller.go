// Package poller drives the geofence detector on a fixed wall-clock
// interval. Scheduling lives here, business rules live in the detector; the
// loop itself is sequential, so ticks can never overlap and the detector's
// state needs no locking.
package poller

import (
	"context"
	"log"
	"time"

	"github.com/truckwise/fleetops-backend-go/internal/detector"
	"github.com/truckwise/fleetops-backend-go/internal/feed"
	"github.com/truckwise/fleetops-backend-go/internal/models"
	"github.com/truckwise/fleetops-backend-go/internal/repository"
	"github.com/truckwise/fleetops-backend-go/internal/service"
)

// PositionSource supplies the latest vehicle samples per tick
type PositionSource interface {
	FetchPositions(ctx context.Context) ([]feed.TrackedVehicle, error)
}

// Poller owns one detection loop
type Poller struct {
	source   PositionSource
	detector *detector.Detector
	tracking *service.TrackingService
	zones    *service.ZoneService
	loads    *repository.LoadRepository
	vehicles *repository.VehicleRepository
	interval time.Duration

	// Last-known positions, retained across transient feed failures
	positions map[string]models.VehiclePosition

	now func() time.Time
}

// New creates a poller
func New(source PositionSource, det *detector.Detector, tracking *service.TrackingService, zones *service.ZoneService, loads *repository.LoadRepository, vehicles *repository.VehicleRepository, interval time.Duration) *Poller {
	return &Poller{
		source:    source,
		detector:  det,
		tracking:  tracking,
		zones:     zones,
		loads:     loads,
		vehicles:  vehicles,
		interval:  interval,
		positions: make(map[string]models.VehiclePosition),
		now:       time.Now,
	}
}

// Start runs the loop in a background goroutine until the context is
// cancelled. Ticks run inline on the ticker channel, so a slow tick delays
// the next one instead of overlapping it.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		log.Printf("[Poller] started, interval %s", p.interval)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Printf("[Poller] stopped")
				return
			case <-ticker.C:
				p.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce executes a single tick: refresh positions, evaluate every gated
// load, dispatch the resulting events. Failures never abort the loop; a
// failed mutation leaves the detector's markers untouched so the same
// transition is re-attempted next tick.
func (p *Poller) RunOnce(ctx context.Context) {
	now := p.now()

	vehicles, err := p.source.FetchPositions(ctx)
	if err != nil {
		log.Printf("[Poller] position refresh failed, keeping last known positions: %v", err)
	} else {
		p.positions = feed.PositionMap(vehicles, now)
		p.syncVehicles(vehicles)
	}

	loads, err := p.loads.GetActiveLoads()
	if err != nil {
		log.Printf("[Poller] failed to load active loads: %v", err)
		return
	}
	if len(loads) == 0 {
		return
	}

	zones, err := p.zones.ZoneMap()
	if err != nil {
		log.Printf("[Poller] failed to load zones: %v", err)
		return
	}

	for _, ev := range p.detector.Tick(now, p.positions, loads, zones) {
		if err := p.tracking.Apply(ev); err != nil {
			log.Printf("[Poller] failed to apply %s for load %d: %v", ev.EventType, ev.LoadID, err)
			continue
		}
		p.detector.Commit(ev)
	}
}

// syncVehicles keeps the vehicles table in step with the assets the feed reports
func (p *Poller) syncVehicles(vehicles []feed.TrackedVehicle) {
	for _, v := range vehicles {
		if v.VehicleKey == "" {
			continue
		}
		if err := p.vehicles.UpsertVehicle(v.VehicleKey, v.Registration, v.Enabled); err != nil {
			log.Printf("[Poller] failed to sync vehicle %s: %v", v.VehicleKey, err)
		}
	}
}
