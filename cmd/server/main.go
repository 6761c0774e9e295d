package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/truckwise/fleetops-backend-go/internal/api"
	"github.com/truckwise/fleetops-backend-go/internal/config"
	"github.com/truckwise/fleetops-backend-go/internal/database"
	"github.com/truckwise/fleetops-backend-go/internal/detector"
	"github.com/truckwise/fleetops-backend-go/internal/feed"
	"github.com/truckwise/fleetops-backend-go/internal/handler"
	"github.com/truckwise/fleetops-backend-go/internal/models"
	"github.com/truckwise/fleetops-backend-go/internal/poller"
	"github.com/truckwise/fleetops-backend-go/internal/repository"
	"github.com/truckwise/fleetops-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()
	db := database.GetDB()

	loadRepo := repository.NewLoadRepository(db)
	zoneRepo := repository.NewZoneRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	zoneService := service.NewZoneService(zoneRepo)
	loadService := service.NewLoadService(loadRepo, zoneRepo)
	statsService := service.NewStatsService(statsRepo)
	trackingService := service.NewTrackingService(db, loadRepo, auditRepo, vehicleRepo, func(load models.Load) {
		// Delivered loads go through manual proof-of-delivery review
		log.Printf("[Main] load %d (%s) delivered, queued for verification", load.ID, load.Reference)
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.FeedConfigured() {
		source := feed.NewClient(cfg.FeedBaseURL, cfg.FeedAPIToken, cfg.FeedAccountID)
		p := poller.New(source, detector.New(), trackingService, zoneService, loadRepo, vehicleRepo, cfg.PollInterval)
		p.Start(ctx)
	} else {
		log.Printf("[Main] FEED_API_TOKEN/FEED_ACCOUNT_ID not set; geofence detection disabled")
	}

	router := api.SetupRouter(cfg, api.Handlers{
		Auth:     handler.NewAuthHandler(cfg),
		Loads:    handler.NewLoadHandler(loadService, trackingService),
		Zones:    handler.NewZoneHandler(zoneService),
		Events:   handler.NewEventHandler(auditRepo),
		Vehicles: handler.NewVehicleHandler(vehicleRepo),
		Stats:    handler.NewStatsHandler(statsService),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
