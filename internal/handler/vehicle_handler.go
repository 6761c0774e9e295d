package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/truckwise/fleetops-backend-go/internal/models"
	"github.com/truckwise/fleetops-backend-go/internal/repository"
	"github.com/truckwise/fleetops-backend-go/pkg/response"
)

// VehicleHandler handles HTTP requests for vehicles and drivers
type VehicleHandler struct {
	vehicles *repository.VehicleRepository
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicles *repository.VehicleRepository) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// GetVehicles handles GET /api/v1/vehicles
func (h *VehicleHandler) GetVehicles(c *gin.Context) {
	vehicles, err := h.vehicles.GetVehicles()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get vehicles", err)
		return
	}

	response.Success(c, vehicles)
}

// GetDrivers handles GET /api/v1/drivers
func (h *VehicleHandler) GetDrivers(c *gin.Context) {
	drivers, err := h.vehicles.GetDrivers()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get drivers", err)
		return
	}

	response.Success(c, drivers)
}

// CreateDriver handles POST /api/v1/drivers
func (h *VehicleHandler) CreateDriver(c *gin.Context) {
	var driver models.Driver
	if err := c.ShouldBindJSON(&driver); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if driver.Name == "" {
		response.Error(c, http.StatusBadRequest, "Driver name is required", nil)
		return
	}

	id, err := h.vehicles.CreateDriver(&driver)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create driver", err)
		return
	}

	response.Success(c, gin.H{"id": id})
}
