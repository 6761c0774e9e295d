package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// same point should be 0
	d := HaversineDistance(-26.2041, 28.0473, -26.2041, 28.0473)
	assert.Equal(t, 0.0, d)

	// one degree of latitude is roughly 111 km
	d = HaversineDistance(-26.0, 28.0473, -27.0, 28.0473)
	assert.InDelta(t, 111195, d, 500)
}

func TestWithinRadius(t *testing.T) {
	centerLat, centerLon := -26.2041, 28.0473

	// ~133m north of center
	assert.True(t, WithinRadius(-26.2029, centerLon, centerLat, centerLon, 200))
	assert.False(t, WithinRadius(-26.2029, centerLon, centerLat, centerLon, 100))

	// center itself is inside any positive radius
	assert.True(t, WithinRadius(centerLat, centerLon, centerLat, centerLon, 1))
}
