package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/truckwise/fleetops-backend-go/internal/service"
	"github.com/truckwise/fleetops-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for delivery performance statistics
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetDeliveryStats handles GET /api/v1/stats/deliveries
func (h *StatsHandler) GetDeliveryStats(c *gin.Context) {
	from, _ := strconv.ParseInt(c.Query("from"), 10, 64)
	to, _ := strconv.ParseInt(c.Query("to"), 10, 64)

	stats, err := h.service.DeliveryPerformance(from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to compute delivery stats", err)
		return
	}

	response.Success(c, stats)
}
