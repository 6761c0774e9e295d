package service

import (
	"fmt"

	"github.com/truckwise/fleetops-backend-go/internal/models"
	"github.com/truckwise/fleetops-backend-go/internal/repository"
)

// ZoneService handles business logic for geofence zones
type ZoneService struct {
	zones *repository.ZoneRepository
}

// NewZoneService creates a new zone service
func NewZoneService(zones *repository.ZoneRepository) *ZoneService {
	return &ZoneService{zones: zones}
}

// GetZones retrieves zones with optional filtering
func (s *ZoneService) GetZones(filter models.ZoneFilter) ([]models.Zone, error) {
	return s.zones.GetZones(filter)
}

// GetZoneByName retrieves a single zone
func (s *ZoneService) GetZoneByName(name string) (*models.Zone, error) {
	return s.zones.GetZoneByName(name)
}

func validateZone(z *models.Zone) error {
	if z.Name == "" {
		return fmt.Errorf("name is required")
	}
	if z.RadiusMeters <= 0 {
		return fmt.Errorf("radius must be positive")
	}
	if z.CenterLat < -90 || z.CenterLat > 90 || z.CenterLon < -180 || z.CenterLon > 180 {
		return fmt.Errorf("center coordinates out of range")
	}
	if z.Kind != "" && z.Kind != models.ZoneKindDepot && z.Kind != models.ZoneKindSite {
		return fmt.Errorf("unknown zone kind %q", z.Kind)
	}
	return nil
}

// CreateZone validates and inserts a new zone
func (s *ZoneService) CreateZone(z *models.Zone) (int64, error) {
	if err := validateZone(z); err != nil {
		return 0, err
	}
	return s.zones.CreateZone(z)
}

// UpdateZone validates and updates an existing zone
func (s *ZoneService) UpdateZone(z *models.Zone) error {
	if err := validateZone(z); err != nil {
		return err
	}
	return s.zones.UpdateZone(z)
}

// DeleteZone removes a zone
func (s *ZoneService) DeleteZone(id int64) error {
	return s.zones.DeleteZone(id)
}

// ZoneMap returns all zones keyed by name, the shape the detector consumes
func (s *ZoneService) ZoneMap() (map[string]models.Zone, error) {
	zones, err := s.zones.GetZones(models.ZoneFilter{})
	if err != nil {
		return nil, err
	}
	m := make(map[string]models.Zone, len(zones))
	for _, z := range zones {
		m[z.Name] = z
	}
	return m, nil
}
