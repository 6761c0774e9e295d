package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/truckwise/fleetops-backend-go/internal/models"
	"github.com/truckwise/fleetops-backend-go/internal/repository"
	"github.com/truckwise/fleetops-backend-go/pkg/response"
)

// EventHandler handles HTTP requests for transition audit events
type EventHandler struct {
	audit *repository.AuditRepository
}

// NewEventHandler creates a new event handler
func NewEventHandler(audit *repository.AuditRepository) *EventHandler {
	return &EventHandler{audit: audit}
}

// GetEvents handles GET /api/v1/events
func (h *EventHandler) GetEvents(c *gin.Context) {
	var filter models.AuditFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	events, total, err := h.audit.GetEvents(filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get events", err)
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

	response.Success(c, gin.H{
		"data":       events,
		"total":      total,
		"page":       filter.Page,
		"pageSize":   filter.PageSize,
		"totalPages": totalPages,
	})
}
