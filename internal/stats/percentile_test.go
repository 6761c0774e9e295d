package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}

	assert.Equal(t, 10.0, Quantile(values, 0))
	assert.Equal(t, 30.0, Quantile(values, 0.5))
	assert.Equal(t, 50.0, Quantile(values, 1))

	// interpolated
	assert.InDelta(t, 15.0, Quantile(values, 0.125), 1e-9)

	// empty input
	assert.Equal(t, 0.0, Quantile(nil, 0.5))
}

func TestPercentile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.InDelta(t, 5.5, Percentile(values, 50), 1e-9)
	assert.InDelta(t, 9.55, Percentile(values, 95), 1e-9)
}

func TestMeanMedian(t *testing.T) {
	values := []float64{2, 4, 9}

	assert.Equal(t, 5.0, Mean(values))
	assert.Equal(t, 4.0, Median(values))
	assert.Equal(t, 0.0, Mean(nil))
}
