package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truckwise/fleetops-backend-go/internal/models"
)

func TestStableInsideHysteresis(t *testing.T) {
	s := NewState()
	zone := &models.Zone{Name: "JHB Depot", RequiresHysteresis: true}

	// Noisy boundary sequence: confirmation requires two consecutive
	// inside reads, any outside read clears immediately.
	raws := []bool{true, false, true, false, true, true}
	want := []bool{false, false, false, false, false, true}

	for i, raw := range raws {
		got := s.stableInside("V1", zone, raw)
		assert.Equal(t, want[i], got, "sample %d", i)
	}

	// Exit clears on the first outside read
	assert.False(t, s.stableInside("V1", zone, false))
	assert.Equal(t, 0, s.hysteresis[hysteresisKey{VehicleKey: "V1", ZoneName: "JHB Depot"}])
}

func TestStableInsidePassThrough(t *testing.T) {
	s := NewState()
	zone := &models.Zone{Name: "Customer Yard", RequiresHysteresis: false}

	// Without hysteresis the raw read is the stable read
	assert.True(t, s.stableInside("V1", zone, true))
	assert.False(t, s.stableInside("V1", zone, false))
	assert.True(t, s.stableInside("V1", zone, true))
}

func TestStableInsideCountersAreVehicleScoped(t *testing.T) {
	s := NewState()
	zone := &models.Zone{Name: "JHB Depot", RequiresHysteresis: true}

	assert.False(t, s.stableInside("V1", zone, true))
	assert.False(t, s.stableInside("V2", zone, true))

	// V1's second consecutive read confirms; V2 is still at one
	assert.True(t, s.stableInside("V1", zone, true))
	assert.True(t, s.stableInside("V2", zone, true))
}
