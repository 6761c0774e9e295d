package detector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateDwellReachesThreshold(t *testing.T) {
	s := NewState()
	t0 := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	// First stationary sample starts the clock
	assert.False(t, s.updateDwell(1, 0.4, t0))
	assert.False(t, s.updateDwell(1, 0.0, t0.Add(2*time.Minute)))
	assert.False(t, s.updateDwell(1, 0.2, t0.Add(4*time.Minute)))

	// Five continuous minutes since the first stationary sample
	assert.True(t, s.updateDwell(1, 0.0, t0.Add(5*time.Minute)))
}

func TestUpdateDwellMovementRestartsClock(t *testing.T) {
	s := NewState()
	t0 := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	assert.False(t, s.updateDwell(1, 0.0, t0))
	// Creeping forward in the queue resets the stationary clock
	assert.False(t, s.updateDwell(1, 3.0, t0.Add(4*time.Minute)))
	assert.False(t, s.updateDwell(1, 0.0, t0.Add(5*time.Minute)))
	assert.False(t, s.updateDwell(1, 0.0, t0.Add(9*time.Minute)))
	assert.True(t, s.updateDwell(1, 0.0, t0.Add(10*time.Minute)))
}

func TestResetDwell(t *testing.T) {
	s := NewState()
	t0 := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	assert.False(t, s.updateDwell(1, 0.0, t0))
	s.resetDwell(1)

	// After leaving and re-entering, the clock starts over
	assert.False(t, s.updateDwell(1, 0.0, t0.Add(6*time.Minute)))
	assert.False(t, s.updateDwell(1, 0.0, t0.Add(10*time.Minute)))
	assert.True(t, s.updateDwell(1, 0.0, t0.Add(11*time.Minute)))
}
