package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPositions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/accounts/acc-1/assets/positions", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"vehicleKey":"V1","registration":"ABC123GP","lat":-26.2,"lon":28.04,"speedKmH":42.5,"inTrip":true,"lastSeenAt":1700000000,"enabled":true},
			{"vehicleKey":"V2","registration":"DEF456GP","lat":null,"lon":null,"speedKmH":0,"inTrip":false,"lastSeenAt":0,"enabled":true}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", "acc-1")
	vehicles, err := c.FetchPositions(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, "V1", vehicles[0].VehicleKey)
	assert.NotNil(t, vehicles[0].Lat)
	assert.Nil(t, vehicles[1].Lat)
}

func TestFetchPositionsMissingToken(t *testing.T) {
	c := NewClient("http://localhost", "", "acc-1")
	_, err := c.FetchPositions(context.Background())
	assert.Error(t, err)
}

func TestFetchPositionsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok", "acc-1")
	_, err := c.FetchPositions(context.Background())
	assert.Error(t, err)
}

func TestPositionMap(t *testing.T) {
	lat, lon := -26.2, 28.04
	now := time.Unix(1700000500, 0)

	vehicles := []TrackedVehicle{
		{VehicleKey: "V1", Lat: &lat, Lon: &lon, SpeedKmH: 10, LastSeenAt: 1700000000, Enabled: true},
		{VehicleKey: "V2", Lat: nil, Lon: nil, Enabled: true},    // no fix yet
		{VehicleKey: "V3", Lat: &lat, Lon: &lon, Enabled: false}, // unit disabled
		{VehicleKey: "V4", Lat: &lat, Lon: &lon, Enabled: true},  // no lastSeenAt
	}

	positions := PositionMap(vehicles, now)
	require.Len(t, positions, 2)
	assert.Equal(t, time.Unix(1700000000, 0), positions["V1"].ObservedAt)
	assert.Equal(t, now, positions["V4"].ObservedAt)
	_, ok := positions["V2"]
	assert.False(t, ok)
}
