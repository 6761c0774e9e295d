package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/truckwise/fleetops-backend-go/internal/models"
	"github.com/truckwise/fleetops-backend-go/internal/service"
	"github.com/truckwise/fleetops-backend-go/pkg/response"
)

// LoadHandler handles HTTP requests for loads
type LoadHandler struct {
	service  *service.LoadService
	tracking *service.TrackingService
}

// NewLoadHandler creates a new load handler
func NewLoadHandler(service *service.LoadService, tracking *service.TrackingService) *LoadHandler {
	return &LoadHandler{service: service, tracking: tracking}
}

// GetLoads handles GET /api/v1/loads
func (h *LoadHandler) GetLoads(c *gin.Context) {
	var filter models.LoadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	loads, total, err := h.service.GetLoads(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get loads", err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	response.Success(c, models.LoadsResponse{
		Data:       loads,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	})
}

// GetLoadByID handles GET /api/v1/loads/:id
func (h *LoadHandler) GetLoadByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid load ID", err)
		return
	}

	load, err := h.service.GetLoadByID(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get load", err)
		return
	}
	if load == nil {
		response.Error(c, http.StatusNotFound, "Load not found", nil)
		return
	}

	response.Success(c, load)
}

// CreateLoad handles POST /api/v1/loads
func (h *LoadHandler) CreateLoad(c *gin.Context) {
	var load models.Load
	if err := c.ShouldBindJSON(&load); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id, err := h.service.CreateLoad(&load)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to create load", err)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// AssignVehicleRequest is the body for the vehicle assignment endpoint
type AssignVehicleRequest struct {
	VehicleKey string `json:"vehicleKey" binding:"required"`
	DriverID   int64  `json:"driverId" binding:"required"`
}

// AssignVehicle handles PUT /api/v1/loads/:id/assignment
func (h *LoadHandler) AssignVehicle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid load ID", err)
		return
	}

	var req AssignVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.AssignVehicle(id, req.VehicleKey, req.DriverID); err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to assign vehicle", err)
		return
	}

	response.Success(c, nil)
}

// ManualTimeRequest is the body for the manual actual-time entry endpoint
type ManualTimeRequest struct {
	EventType string `json:"eventType" binding:"required"`
	Timestamp int64  `json:"timestamp" binding:"required"`
}

// RecordManualTime handles POST /api/v1/loads/:id/actual-times.
// This is the degradation path when automatic detection could not confirm a
// transition: operators key the time in by hand, with manual provenance.
func (h *LoadHandler) RecordManualTime(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid load ID", err)
		return
	}

	var req ManualTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.tracking.RecordManual(id, req.EventType, req.Timestamp); err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to record actual time", err)
		return
	}

	response.Success(c, nil)
}
