package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/truckwise/fleetops-backend-go/internal/models"
	"github.com/truckwise/fleetops-backend-go/internal/service"
	"github.com/truckwise/fleetops-backend-go/pkg/response"
)

// ZoneHandler handles HTTP requests for geofence zones
type ZoneHandler struct {
	service *service.ZoneService
}

// NewZoneHandler creates a new zone handler
func NewZoneHandler(service *service.ZoneService) *ZoneHandler {
	return &ZoneHandler{service: service}
}

// GetZones handles GET /api/v1/zones
func (h *ZoneHandler) GetZones(c *gin.Context) {
	var filter models.ZoneFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	zones, err := h.service.GetZones(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get zones", err)
		return
	}

	response.Success(c, zones)
}

// CreateZone handles POST /api/v1/zones
func (h *ZoneHandler) CreateZone(c *gin.Context) {
	var zone models.Zone
	if err := c.ShouldBindJSON(&zone); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	id, err := h.service.CreateZone(&zone)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to create zone", err)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// UpdateZone handles PUT /api/v1/zones/:id
func (h *ZoneHandler) UpdateZone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid zone ID", err)
		return
	}

	var zone models.Zone
	if err := c.ShouldBindJSON(&zone); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	zone.ID = id

	if err := h.service.UpdateZone(&zone); err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to update zone", err)
		return
	}

	response.Success(c, nil)
}

// DeleteZone handles DELETE /api/v1/zones/:id
func (h *ZoneHandler) DeleteZone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid zone ID", err)
		return
	}

	if err := h.service.DeleteZone(id); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete zone", err)
		return
	}

	response.Success(c, nil)
}
