package service

import (
	"github.com/truckwise/fleetops-backend-go/internal/repository"
	"github.com/truckwise/fleetops-backend-go/internal/stats"
)

// DeliveryStats summarizes delivery performance over a period
type DeliveryStats struct {
	StatusCounts   map[string]int64 `json:"statusCounts"`
	EventCounts    map[string]int64 `json:"eventCounts"`
	TransitCount   int              `json:"transitCount"`
	MeanTransitS   float64          `json:"meanTransitSeconds"`
	MedianTransitS float64          `json:"medianTransitSeconds"`
	P95TransitS    float64          `json:"p95TransitSeconds"`
}

// StatsService computes delivery performance statistics
type StatsService struct {
	repo *repository.StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(repo *repository.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// DeliveryPerformance aggregates load counts and transit durations for the
// given window (Unix timestamps; zero means unbounded)
func (s *StatsService) DeliveryPerformance(from, to int64) (*DeliveryStats, error) {
	counts, err := s.repo.CountByStatus()
	if err != nil {
		return nil, err
	}

	eventCounts, err := s.repo.AutomaticEventCounts(from, to)
	if err != nil {
		return nil, err
	}

	durations, err := s.repo.TransitDurations(from, to)
	if err != nil {
		return nil, err
	}

	return &DeliveryStats{
		StatusCounts:   counts,
		EventCounts:    eventCounts,
		TransitCount:   len(durations),
		MeanTransitS:   stats.Mean(durations),
		MedianTransitS: stats.Median(durations),
		P95TransitS:    stats.Percentile(durations, 95),
	}, nil
}
