package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"worksbill/internal/domain"
	"worksbill/internal/port"
)

type snapshotRepo struct {
	db *sqlx.DB
}

// NewSnapshotRepo creates a new PostgreSQL-backed SnapshotRepository.
func NewSnapshotRepo(db *sqlx.DB) port.SnapshotRepository {
	return &snapshotRepo{db: db}
}

// Snapshot reads all tables inside one read-only repeatable-read transaction.
func (r *snapshotRepo) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("snapshotRepo.Snapshot begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	snap := &domain.Snapshot{
		TakenAt:     time.Now().UTC(),
		Contractors: []domain.Contractor{},
		Works:       []domain.Work{},
		Budgets:     []domain.BudgetEntry{},
		Bills:       []domain.Bill{},
	}
	if err := tx.SelectContext(ctx, &snap.Contractors, "SELECT * FROM contractors ORDER BY created_at"); err != nil {
		return nil, fmt.Errorf("snapshotRepo.Snapshot contractors: %w", err)
	}
	if err := tx.SelectContext(ctx, &snap.Works, "SELECT * FROM works ORDER BY created_at"); err != nil {
		return nil, fmt.Errorf("snapshotRepo.Snapshot works: %w", err)
	}
	if err := tx.SelectContext(ctx, &snap.Budgets, "SELECT * FROM budgets ORDER BY bill_type, major_head, scheme"); err != nil {
		return nil, fmt.Errorf("snapshotRepo.Snapshot budgets: %w", err)
	}
	if err := tx.SelectContext(ctx, &snap.Bills, "SELECT * FROM bills ORDER BY bill_no"); err != nil {
		return nil, fmt.Errorf("snapshotRepo.Snapshot bills: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("snapshotRepo.Snapshot commit: %w", err)
	}
	return snap, nil
}
