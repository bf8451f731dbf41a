package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"worksbill/internal/domain"
	"worksbill/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const billStatsQuery = `SELECT
	COUNT(CASE WHEN status = 'Pending' THEN 1 END) AS pending_bills,
	COUNT(*) AS total_bills,
	COALESCE(SUM(billed_amount), 0) AS billed_total
FROM bills `

func (r *statsRepo) GetStats(ctx context.Context, filters domain.ReportFilters) (*domain.Stats, error) {
	where, args := dateClause("WHERE 1=1", "created_at", filters.From, filters.To, nil)

	var stats domain.Stats
	if err := r.db.GetContext(ctx, &stats, billStatsQuery+where, args...); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats bills: %w", err)
	}

	if err := r.db.GetContext(ctx, &stats.TotalContractors, "SELECT COUNT(*) FROM contractors"); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats contractors: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.TotalWorks, "SELECT COUNT(*) FROM works"); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats works: %w", err)
	}
	return &stats, nil
}

const dailyExpenditureQuery = `SELECT
	date_trunc('day', created_at) AS day,
	COUNT(*) AS bills,
	COALESCE(SUM(billed_amount), 0) AS billed_amount
FROM bills `

func (r *statsRepo) DailyExpenditure(ctx context.Context, filters domain.ReportFilters) ([]domain.DailyExpenditure, error) {
	where, args := dateClause("WHERE 1=1", "created_at", filters.From, filters.To, nil)
	query := dailyExpenditureQuery + where + " GROUP BY day ORDER BY day"

	days := []domain.DailyExpenditure{}
	if err := r.db.SelectContext(ctx, &days, query, args...); err != nil {
		return nil, fmt.Errorf("statsRepo.DailyExpenditure: %w", err)
	}
	return days, nil
}
