package service

import (
	"context"

	"github.com/shopspring/decimal"

	"worksbill/internal/domain"
	"worksbill/internal/port"
)

// StatsService provides dashboard statistics.
type StatsService interface {
	GetStats(ctx context.Context, filters domain.ReportFilters) (*domain.Stats, error)
	ExpenditureTrend(ctx context.Context, filters domain.ReportFilters) (*domain.ExpenditureTrend, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context, filters domain.ReportFilters) (*domain.Stats, error) {
	if err := checkRange(filters); err != nil {
		return nil, err
	}
	return s.statsRepo.GetStats(ctx, filters)
}

func (s *statsService) ExpenditureTrend(ctx context.Context, filters domain.ReportFilters) (*domain.ExpenditureTrend, error) {
	if err := checkRange(filters); err != nil {
		return nil, err
	}
	days, err := s.statsRepo.DailyExpenditure(ctx, filters)
	if err != nil {
		return nil, err
	}
	trend := &domain.ExpenditureTrend{Days: days, Total: decimal.Zero}
	for _, d := range days {
		trend.Total = trend.Total.Add(d.BilledAmount)
	}
	return trend, nil
}
