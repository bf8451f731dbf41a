package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"worksbill/internal/domain"
	"worksbill/internal/port"
)

type budgetRepo struct {
	db *sqlx.DB
}

// NewBudgetRepo creates a new PostgreSQL-backed BudgetRepository.
func NewBudgetRepo(db *sqlx.DB) port.BudgetRepository {
	return &budgetRepo{db: db}
}

func (r *budgetRepo) Create(ctx context.Context, e *domain.BudgetEntry) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now().UTC()

	query := `INSERT INTO budgets (id, bill_type, major_head, scheme, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query,
		e.ID, e.BillType, e.MajorHead, e.Scheme, e.Amount, e.CreatedAt); err != nil {
		return fmt.Errorf("budgetRepo.Create: %w", err)
	}
	return nil
}

func (r *budgetRepo) ListByType(ctx context.Context, billType domain.BillType) ([]domain.BudgetEntry, error) {
	entries := []domain.BudgetEntry{}
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM budgets WHERE bill_type = $1 ORDER BY major_head, scheme", billType)
	if err != nil {
		return nil, fmt.Errorf("budgetRepo.ListByType: %w", err)
	}
	return entries, nil
}
