package service

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/truckwise/fleetops-backend-go/internal/database"
	"github.com/truckwise/fleetops-backend-go/internal/models"
	"github.com/truckwise/fleetops-backend-go/internal/repository"
)

// CompletionCallback is invoked exactly once per load when its offloading
// departure is recorded (e.g. to queue the proof-of-delivery review)
type CompletionCallback func(load models.Load)

// TrackingService applies confirmed geofence transitions: it sets the
// matching actual-time field, advances the load's status, writes the audit
// record and fires the completion callback on delivery.
type TrackingService struct {
	db         *sql.DB
	loads      *repository.LoadRepository
	audit      *repository.AuditRepository
	vehicles   *repository.VehicleRepository
	onComplete CompletionCallback
}

// NewTrackingService creates a new tracking service
func NewTrackingService(db *sql.DB, loads *repository.LoadRepository, audit *repository.AuditRepository, vehicles *repository.VehicleRepository, onComplete CompletionCallback) *TrackingService {
	return &TrackingService{
		db:         db,
		loads:      loads,
		audit:      audit,
		vehicles:   vehicles,
		onComplete: onComplete,
	}
}

// Apply performs the mutation for one transition event. The actual-time
// column is only written while still NULL, which makes replays of the same
// transition harmless: the second application is a no-op and produces neither
// an audit row nor a callback.
//
// Field set, status advance and audit row commit or roll back together. A
// partial write would strand the load with its actual time recorded but no
// audit trail, and the IS NULL guard would then block the retry forever.
func (s *TrackingService) Apply(ev models.TransitionEvent) error {
	registration := ev.VehicleRegistration
	if registration == "" && ev.VehicleKey != "" {
		if v, err := s.vehicles.GetVehicleByKey(ev.VehicleKey); err == nil && v != nil {
			registration = v.Registration
		}
	}

	applied := false
	err := database.Transaction(s.db, func(tx *sql.Tx) error {
		loads := s.loads.WithTx(tx)

		var err error
		applied, err = loads.SetActualTime(ev.LoadID, ev.EventType, ev.Timestamp.Unix())
		if err != nil {
			return fmt.Errorf("failed to apply %s for load %d: %w", ev.EventType, ev.LoadID, err)
		}
		if !applied {
			return nil
		}

		if ev.NewStatus != "" {
			if err := loads.AdvanceStatus(ev.LoadID, ev.NewStatus); err != nil {
				return fmt.Errorf("failed to advance load %d to %s: %w", ev.LoadID, ev.NewStatus, err)
			}
		}

		return s.audit.WithTx(tx).InsertEvent(&models.AuditEvent{
			LoadID:              ev.LoadID,
			EventType:           ev.EventType,
			ZoneName:            ev.ZoneName,
			Lat:                 ev.Lat,
			Lon:                 ev.Lon,
			VehicleRegistration: registration,
			Provenance:          models.ProvenanceAutomatic,
			OccurredAt:          ev.Timestamp.Unix(),
		})
	})
	if err != nil {
		return err
	}
	if !applied {
		log.Printf("[TrackingService] load %d: %s already recorded, nothing to apply", ev.LoadID, ev.EventType)
		return nil
	}

	log.Printf("[TrackingService] load %d: %s at %s (zone %s)", ev.LoadID, ev.EventType, ev.Timestamp.Format("15:04:05"), ev.ZoneName)

	if ev.Completed && s.onComplete != nil {
		if load, err := s.loads.GetLoadByID(ev.LoadID); err == nil && load != nil {
			s.onComplete(*load)
		}
	}

	return nil
}

// RecordManual records an operator-entered actual time. It obeys the same
// set-once rule as automatic detection and is audited with manual provenance.
func (s *TrackingService) RecordManual(loadID int64, eventType string, timestamp int64) error {
	return database.Transaction(s.db, func(tx *sql.Tx) error {
		applied, err := s.loads.WithTx(tx).SetActualTime(loadID, eventType, timestamp)
		if err != nil {
			return err
		}
		if !applied {
			return fmt.Errorf("%s already recorded for load %d", eventType, loadID)
		}

		return s.audit.WithTx(tx).InsertEvent(&models.AuditEvent{
			LoadID:     loadID,
			EventType:  eventType,
			ZoneName:   "",
			Provenance: models.ProvenanceManual,
			OccurredAt: timestamp,
		})
	})
}
