package port

import (
	"context"

	"github.com/google/uuid"

	"worksbill/internal/domain"
)

// ContractorRepository defines the contract for contractor persistence.
// Contractors are never updated once created.
type ContractorRepository interface {
	Create(ctx context.Context, contractor *domain.Contractor) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contractor, error)
	List(ctx context.Context, offset, limit int) ([]domain.Contractor, int, error)
}

// WorkRepository defines the contract for sanctioned-work persistence.
// Head and code lookups match case-insensitively on trimmed values.
type WorkRepository interface {
	Create(ctx context.Context, work *domain.Work) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Work, error)
	List(ctx context.Context, offset, limit int) ([]domain.Work, int, error)
	ListByHead(ctx context.Context, majorHead, scheme string) ([]domain.Work, error)
	ListByCode(ctx context.Context, workcode string) ([]domain.Work, error)
}

// BudgetRepository defines the contract for budget ceiling rows.
type BudgetRepository interface {
	Create(ctx context.Context, entry *domain.BudgetEntry) error
	ListByType(ctx context.Context, billType domain.BillType) ([]domain.BudgetEntry, error)
}

// BillCreateOptions controls the side effects of inserting a bill.
type BillCreateOptions struct {
	// UpdateExpenditure adds the billed amount to the bill's work in the same transaction.
	UpdateExpenditure bool
	// Recheck runs against the work row after it is locked and before the insert.
	// A non-nil error aborts the transaction.
	Recheck func(locked *domain.Work) error
}

// BillRepository defines the contract for bill persistence.
type BillRepository interface {
	// Create inserts the bill and assigns its ID, BillNo and CreatedAt. When the bill
	// references a work, the work row is locked for the duration of the insert.
	Create(ctx context.Context, bill *domain.Bill, opts BillCreateOptions) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error)
	List(ctx context.Context, filters domain.BillFilters) ([]domain.Bill, int, error)
}

// SnapshotRepository reads every table in one consistent transaction.
type SnapshotRepository interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}
