package detector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truckwise/fleetops-backend-go/internal/models"
)

// Depot center: Johannesburg. Destination: Durban.
const (
	depotLat = -26.2041
	depotLon = 28.0473
	siteLat  = -29.8587
	siteLon  = 31.0218
)

func testZones() map[string]models.Zone {
	return map[string]models.Zone{
		"JHB Depot": {
			Name: "JHB Depot", Kind: models.ZoneKindDepot,
			CenterLat: depotLat, CenterLon: depotLon, RadiusMeters: 500,
			RequiresHysteresis: true,
		},
		"Umlazi DC": {
			Name: "Umlazi DC", Kind: models.ZoneKindSite,
			CenterLat: siteLat, CenterLon: siteLon, RadiusMeters: 500,
			RequiresHysteresis: false,
		},
	}
}

func positions(key string, lat, lon, speed float64) map[string]models.VehiclePosition {
	return map[string]models.VehiclePosition{
		key: {VehicleKey: key, Lat: lat, Lon: lon, SpeedKmH: speed},
	}
}

func pendingLoad() models.Load {
	return models.Load{
		ID:                 10,
		Reference:          "LD-1001",
		Status:             models.StatusPending,
		OriginZone:         "JHB Depot",
		DestinationZone:    "Umlazi DC",
		AssignedVehicleKey: "V1",
		AssignedDriverID:   7,
		LoadingDate:        1700000000,
	}
}

func TestPendingSchedulesAfterConfirmedEntry(t *testing.T) {
	d := New()
	zones := testZones()
	load := pendingLoad()
	t1 := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)

	// First inside read on a hysteresis zone is not yet believed
	evs := d.Tick(t1, positions("V1", depotLat, depotLon, 12), []models.Load{load}, zones)
	assert.Empty(t, evs)

	// Second consecutive inside read confirms entry and schedules the load
	t2 := t1.Add(30 * time.Second)
	evs = d.Tick(t2, positions("V1", depotLat, depotLon, 5), []models.Load{load}, zones)
	require.Len(t, evs, 1)
	ev := evs[0]
	assert.Equal(t, models.EventLoadingArrival, ev.EventType)
	assert.Equal(t, models.StatusScheduled, ev.NewStatus)
	assert.Equal(t, t2, ev.Timestamp)
	assert.Equal(t, "JHB Depot", ev.ZoneName)
	assert.False(t, ev.Completed)
}

func TestPendingWithoutDriverStaysPut(t *testing.T) {
	d := New()
	zones := testZones()
	load := pendingLoad()
	load.AssignedDriverID = 0
	t1 := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		evs := d.Tick(t1.Add(time.Duration(i)*time.Minute), positions("V1", depotLat, depotLon, 0), []models.Load{load}, zones)
		assert.Empty(t, evs)
	}
}

func TestArrivalAlreadySetEmitsNothingInside(t *testing.T) {
	d := New()
	zones := testZones()
	load := pendingLoad()
	ts := int64(1700001000)
	load.ActualLoadingArrival = &ts

	t1 := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		evs := d.Tick(t1.Add(time.Duration(i)*time.Minute), positions("V1", depotLat, depotLon, 0), []models.Load{load}, zones)
		assert.Empty(t, evs)
	}
}

func TestOriginExitBackfillsArrivalBeforeDeparture(t *testing.T) {
	d := New()
	zones := testZones()
	load := pendingLoad()
	load.Status = models.StatusScheduled
	t1 := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)

	// Build up the confirmed-inside marker
	d.Tick(t1, positions("V1", depotLat, depotLon, 0), []models.Load{load}, zones)
	d.Tick(t1.Add(time.Minute), positions("V1", depotLat, depotLon, 0), []models.Load{load}, zones)

	// Exit with both loading times missing: the arrival is filled first
	t3 := t1.Add(2 * time.Minute)
	evs := d.Tick(t3, positions("V1", -26.30, depotLon, 60), []models.Load{load}, zones)
	require.Len(t, evs, 1)
	assert.Equal(t, models.EventLoadingArrival, evs[0].EventType)
	assert.Empty(t, evs[0].NewStatus) // already scheduled, no advance
	d.Commit(evs[0])
	arrival := t3.Unix()
	load.ActualLoadingArrival = &arrival

	// Still outside next tick: now the departure fires and the load goes in-transit
	t4 := t1.Add(3 * time.Minute)
	evs = d.Tick(t4, positions("V1", -26.30, depotLon, 60), []models.Load{load}, zones)
	require.Len(t, evs, 1)
	assert.Equal(t, models.EventLoadingDeparture, evs[0].EventType)
	assert.Equal(t, models.StatusInTransit, evs[0].NewStatus)
	d.Commit(evs[0])
	departure := t4.Unix()
	load.ActualLoadingDeparture = &departure
	load.Status = models.StatusInTransit

	// Visit concluded: nothing further fires while outside
	evs = d.Tick(t1.Add(4*time.Minute), positions("V1", -26.30, depotLon, 60), []models.Load{load}, zones)
	assert.Empty(t, evs)
}

func TestDeliveryPurgesLoadState(t *testing.T) {
	d := New()
	zones := testZones()
	load := pendingLoad()
	load.Status = models.StatusInTransit
	arrival := int64(1700050000)
	load.ActualOffloadingArrival = &arrival
	t1 := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)

	// Confirmed inside the destination (no hysteresis on customer sites)
	evs := d.Tick(t1, positions("V1", siteLat, siteLon, 2), []models.Load{load}, zones)
	assert.Empty(t, evs) // arrival already recorded

	// Falling edge out of the destination completes the delivery
	t2 := t1.Add(time.Minute)
	evs = d.Tick(t2, positions("V1", -29.95, siteLon, 40), []models.Load{load}, zones)
	require.Len(t, evs, 1)
	ev := evs[0]
	assert.Equal(t, models.EventOffloadingDeparture, ev.EventType)
	assert.Equal(t, models.StatusDelivered, ev.NewStatus)
	assert.True(t, ev.Completed)

	d.Commit(ev)

	// Every ephemeral marker belonging to the load is gone
	assert.False(t, d.state.hasEntry(load.ID, roleOrigin))
	assert.False(t, d.state.hasEntry(load.ID, roleDestination))
	_, hasDwell := d.state.dwell[load.ID]
	assert.False(t, hasDwell)
	for k := range d.state.processed {
		assert.NotEqual(t, load.ID, k.LoadID)
	}
}

func TestDwellFallbackAndRetryAfterFailedDispatch(t *testing.T) {
	d := New()
	zones := testZones()
	load := pendingLoad()
	load.Status = models.StatusInTransit
	t1 := time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC)

	// Rising edge into the destination emits the arrival...
	evs := d.Tick(t1, positions("V1", siteLat, siteLon, 0.5), []models.Load{load}, zones)
	require.Len(t, evs, 1)
	assert.Equal(t, models.EventOffloadingArrival, evs[0].EventType)
	// ...but the mutation fails, so the event is never committed.

	// Still parked one minute later: below dwell threshold, nothing yet
	evs = d.Tick(t1.Add(time.Minute), positions("V1", siteLat, siteLon, 0.0), []models.Load{load}, zones)
	assert.Empty(t, evs)

	// Five continuous stationary minutes re-raise the arrival via dwell
	evs = d.Tick(t1.Add(5*time.Minute), positions("V1", siteLat, siteLon, 0.0), []models.Load{load}, zones)
	require.Len(t, evs, 1)
	assert.Equal(t, models.EventOffloadingArrival, evs[0].EventType)
	assert.Empty(t, evs[0].NewStatus) // arrival at destination does not advance status
}

func TestDeduplicatorSuppressesSameDayRepeat(t *testing.T) {
	d := New()
	zones := testZones()
	load := pendingLoad()
	t1 := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)

	d.Tick(t1, positions("V1", depotLat, depotLon, 0), []models.Load{load}, zones)
	evs := d.Tick(t1.Add(time.Minute), positions("V1", depotLat, depotLon, 0), []models.Load{load}, zones)
	require.Len(t, evs, 1)
	d.Commit(evs[0])

	// The actual-time field is still unset on our copy, but the committed
	// dedup key suppresses a same-day repeat
	evs = d.Tick(t1.Add(2*time.Minute), positions("V1", depotLat, depotLon, 0), []models.Load{load}, zones)
	assert.Empty(t, evs)

	// A day later the dedup key no longer applies
	evs = d.Tick(t1.Add(25*time.Hour), positions("V1", depotLat, depotLon, 0), []models.Load{load}, zones)
	assert.Len(t, evs, 1)
}

func TestUnresolvableZoneSkipsLoadOnly(t *testing.T) {
	d := New()
	zones := testZones()
	broken := pendingLoad()
	broken.OriginZone = "No Such Place"
	healthy := pendingLoad()
	healthy.ID = 11
	healthy.AssignedVehicleKey = "V2"
	healthy.OriginZone = "Umlazi DC" // no hysteresis, single tick confirms

	t1 := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	pos := map[string]models.VehiclePosition{
		"V1": {VehicleKey: "V1", Lat: depotLat, Lon: depotLon},
		"V2": {VehicleKey: "V2", Lat: siteLat, Lon: siteLon},
	}

	evs := d.Tick(t1, pos, []models.Load{broken, healthy}, zones)
	require.Len(t, evs, 1)
	assert.Equal(t, int64(11), evs[0].LoadID)
}

func TestNoPositionIsANoOp(t *testing.T) {
	d := New()
	zones := testZones()
	load := pendingLoad()
	t1 := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)

	evs := d.Tick(t1, map[string]models.VehiclePosition{}, []models.Load{load}, zones)
	assert.Empty(t, evs)

	unassigned := pendingLoad()
	unassigned.AssignedVehicleKey = ""
	evs = d.Tick(t1, map[string]models.VehiclePosition{}, []models.Load{unassigned}, zones)
	assert.Empty(t, evs)
}
