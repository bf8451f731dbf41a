package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"worksbill/internal/domain"
	"worksbill/internal/port"
)

type billRepo struct {
	db *sqlx.DB
}

// NewBillRepo creates a new PostgreSQL-backed BillRepository.
func NewBillRepo(db *sqlx.DB) port.BillRepository {
	return &billRepo{db: db}
}

const insertBillQuery = `INSERT INTO bills (
	id, bill_type, contractor_id, payee, account_number, work_id, workcode, major_head, scheme, nomenclature,
	billed_amount, deduct_payments, payable, restricted_to_amount, calculation_basis,
	income_tax_percent, income_tax_amount, deposit_percent, deposit_amount, cess_percent, cess_amount,
	cgst_percent, cgst_amount, sgst_percent, sgst_amount, total_deduction, net_amount, net_amount_words,
	cc_bill, final_bill, status, created_at
) VALUES (
	:id, :bill_type, :contractor_id, :payee, :account_number, :work_id, :workcode, :major_head, :scheme, :nomenclature,
	:billed_amount, :deduct_payments, :payable, :restricted_to_amount, :calculation_basis,
	:income_tax_percent, :income_tax_amount, :deposit_percent, :deposit_amount, :cess_percent, :cess_amount,
	:cgst_percent, :cgst_amount, :sgst_percent, :sgst_amount, :total_deduction, :net_amount, :net_amount_words,
	:cc_bill, :final_bill, :status, :created_at
) RETURNING bill_no`

// Create inserts the bill and, when asked, adds its billed amount to the work's
// expenditure. The work row is locked with SELECT ... FOR UPDATE first so that
// concurrent bills against the same work are checked one at a time.
func (r *billRepo) Create(ctx context.Context, bill *domain.Bill, opts port.BillCreateOptions) error {
	if bill.ID == uuid.Nil {
		bill.ID = uuid.New()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("billRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if bill.WorkID != nil {
		var work domain.Work
		err = tx.GetContext(ctx, &work, "SELECT * FROM works WHERE id = $1 FOR UPDATE", *bill.WorkID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrWorkNotFound
			}
			return fmt.Errorf("billRepo.Create lock work: %w", err)
		}
		if opts.Recheck != nil {
			if err := opts.Recheck(&work); err != nil {
				return err
			}
		}
	}

	query, args, err := tx.BindNamed(insertBillQuery, bill)
	if err != nil {
		return fmt.Errorf("billRepo.Create bind: %w", err)
	}
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&bill.BillNo); err != nil {
		return fmt.Errorf("billRepo.Create insert: %w", err)
	}

	if opts.UpdateExpenditure && bill.WorkID != nil {
		result, err := tx.ExecContext(ctx,
			"UPDATE works SET expenditure = expenditure + $1 WHERE id = $2", bill.BilledAmount, *bill.WorkID)
		if err != nil {
			return fmt.Errorf("billRepo.Create update expenditure: %w", err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return domain.ErrWorkNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("billRepo.Create commit: %w", err)
	}
	return nil
}

func (r *billRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bill, error) {
	var b domain.Bill
	err := r.db.GetContext(ctx, &b, "SELECT * FROM bills WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBillNotFound
		}
		return nil, fmt.Errorf("billRepo.GetByID: %w", err)
	}
	return &b, nil
}

func (r *billRepo) List(ctx context.Context, filters domain.BillFilters) ([]domain.Bill, int, error) {
	where, args := dateClause("WHERE 1=1", "created_at", filters.From, filters.To, nil)

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM bills "+where, args...); err != nil {
		return nil, 0, fmt.Errorf("billRepo.List count: %w", err)
	}

	args = append(args, filters.Limit, filters.Offset)
	query := fmt.Sprintf("SELECT * FROM bills %s ORDER BY bill_no DESC LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args))

	bills := []domain.Bill{}
	if err := r.db.SelectContext(ctx, &bills, query, args...); err != nil {
		return nil, 0, fmt.Errorf("billRepo.List: %w", err)
	}
	return bills, total, nil
}
