package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/truckwise/fleetops-backend-go/internal/config"
	"github.com/truckwise/fleetops-backend-go/internal/handler"
	"github.com/truckwise/fleetops-backend-go/internal/middleware"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Auth     *handler.AuthHandler
	Loads    *handler.LoadHandler
	Zones    *handler.ZoneHandler
	Events   *handler.EventHandler
	Vehicles *handler.VehicleHandler
	Stats    *handler.StatsHandler
}

// SetupRouter wires middleware and routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "FleetOps API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", h.Auth.Login)

		// Read-only surfaces
		api.GET("/loads", h.Loads.GetLoads)
		api.GET("/loads/:id", h.Loads.GetLoadByID)
		api.GET("/zones", h.Zones.GetZones)
		api.GET("/events", h.Events.GetEvents)
		api.GET("/vehicles", h.Vehicles.GetVehicles)
		api.GET("/drivers", h.Vehicles.GetDrivers)
		api.GET("/stats/deliveries", h.Stats.GetDeliveryStats)

		// Mutations require a token
		authed := api.Group("")
		authed.Use(middleware.Auth(cfg.JWTSecret))
		{
			authed.POST("/loads", h.Loads.CreateLoad)
			authed.PUT("/loads/:id/assignment", h.Loads.AssignVehicle)
			authed.POST("/loads/:id/actual-times", h.Loads.RecordManualTime)
			authed.POST("/zones", h.Zones.CreateZone)
			authed.PUT("/zones/:id", h.Zones.UpdateZone)
			authed.DELETE("/zones/:id", h.Zones.DeleteZone)
			authed.POST("/drivers", h.Vehicles.CreateDriver)
		}
	}

	return r
}
