package service

import (
	"fmt"

	"github.com/truckwise/fleetops-backend-go/internal/models"
	"github.com/truckwise/fleetops-backend-go/internal/repository"
)

// LoadService handles business logic for loads
type LoadService struct {
	loads *repository.LoadRepository
	zones *repository.ZoneRepository
}

// NewLoadService creates a new load service
func NewLoadService(loads *repository.LoadRepository, zones *repository.ZoneRepository) *LoadService {
	return &LoadService{loads: loads, zones: zones}
}

// GetLoads retrieves loads with filtering and pagination
func (s *LoadService) GetLoads(filter models.LoadFilter) ([]models.Load, int64, error) {
	return s.loads.GetLoads(filter)
}

// GetLoadByID retrieves a single load
func (s *LoadService) GetLoadByID(id int64) (*models.Load, error) {
	return s.loads.GetLoadByID(id)
}

// CreateLoad validates and inserts a new load. Origin and destination must
// name zones that exist in the registry, otherwise the detector would skip
// the load forever.
func (s *LoadService) CreateLoad(l *models.Load) (int64, error) {
	if l.Reference == "" {
		return 0, fmt.Errorf("reference is required")
	}
	if l.LoadingDate <= 0 {
		return 0, fmt.Errorf("loading date is required")
	}
	for _, name := range []string{l.OriginZone, l.DestinationZone} {
		z, err := s.zones.GetZoneByName(name)
		if err != nil {
			return 0, err
		}
		if z == nil {
			return 0, fmt.Errorf("zone %q does not exist", name)
		}
	}
	return s.loads.CreateLoad(l)
}

// AssignVehicle assigns a vehicle and driver to a load
func (s *LoadService) AssignVehicle(loadID int64, vehicleKey string, driverID int64) error {
	load, err := s.loads.GetLoadByID(loadID)
	if err != nil {
		return err
	}
	if load == nil {
		return fmt.Errorf("load %d does not exist", loadID)
	}
	if load.Status == models.StatusDelivered {
		return fmt.Errorf("load %d is already delivered", loadID)
	}
	return s.loads.AssignVehicle(loadID, vehicleKey, driverID)
}
