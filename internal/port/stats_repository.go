package port

import (
	"context"

	"worksbill/internal/domain"
)

// StatsRepository provides dashboard statistics queries.
type StatsRepository interface {
	GetStats(ctx context.Context, filters domain.ReportFilters) (*domain.Stats, error)
	// DailyExpenditure returns billed amounts grouped by day, oldest first. Days
	// without bills are absent.
	DailyExpenditure(ctx context.Context, filters domain.ReportFilters) ([]domain.DailyExpenditure, error)
}
