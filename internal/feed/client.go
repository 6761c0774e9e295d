// Package feed adapts the external telematics provider's REST API into the
// latest-position-per-vehicle view the detection loop consumes.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/truckwise/fleetops-backend-go/internal/models"
)

// TrackedVehicle mirrors one row of the provider's asset positions response.
// Lat/Lon are pointers because the provider reports null for units that have
// not produced a fix yet.
type TrackedVehicle struct {
	VehicleKey   string   `json:"vehicleKey"`
	Registration string   `json:"registration"`
	Lat          *float64 `json:"lat"`
	Lon          *float64 `json:"lon"`
	SpeedKmH     float64  `json:"speedKmH"`
	InTrip       bool     `json:"inTrip"`
	LastSeenAt   int64    `json:"lastSeenAt"`
	Enabled      bool     `json:"enabled"`
}

// Client calls the telematics provider
type Client struct {
	baseURL   string
	token     string
	accountID string
	http      *http.Client
}

// NewClient creates a feed client for one provider account
func NewClient(baseURL, token, accountID string) *Client {
	return &Client{
		baseURL:   baseURL,
		token:     token,
		accountID: accountID,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchPositions returns the latest sample for every asset on the account
func (c *Client) FetchPositions(ctx context.Context) ([]TrackedVehicle, error) {
	if c.token == "" {
		return nil, errors.New("feed API token not configured")
	}

	u := fmt.Sprintf("%s/v2/accounts/%s/assets/positions", c.baseURL, c.accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var vehicles []TrackedVehicle
	if err := json.NewDecoder(resp.Body).Decode(&vehicles); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	return vehicles, nil
}

// PositionMap converts raw feed rows into the per-vehicle position view.
// Disabled units and rows with null coordinates are dropped for this tick.
func PositionMap(vehicles []TrackedVehicle, now time.Time) map[string]models.VehiclePosition {
	positions := make(map[string]models.VehiclePosition, len(vehicles))
	for _, v := range vehicles {
		if !v.Enabled || v.Lat == nil || v.Lon == nil {
			continue
		}
		observed := now
		if v.LastSeenAt > 0 {
			observed = time.Unix(v.LastSeenAt, 0)
		}
		positions[v.VehicleKey] = models.VehiclePosition{
			VehicleKey: v.VehicleKey,
			Lat:        *v.Lat,
			Lon:        *v.Lon,
			SpeedKmH:   v.SpeedKmH,
			InTrip:     v.InTrip,
			ObservedAt: observed,
		}
	}
	return positions
}
