package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"worksbill/internal/domain"
	"worksbill/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) PaymentRegister(ctx context.Context, filters domain.ReportFilters) ([]domain.PaymentRegisterRow, error) {
	where, args := dateClause("WHERE 1=1", "created_at", filters.From, filters.To, nil)
	query := `SELECT bill_no, created_at, payee, workcode, payable, status
		FROM bills ` + where + ` ORDER BY bill_no`

	rows := []domain.PaymentRegisterRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.PaymentRegister: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) ContractorPayments(ctx context.Context, filters domain.ReportFilters) ([]domain.ContractorPaymentRow, error) {
	where, args := dateClause("WHERE 1=1", "created_at", filters.From, filters.To, nil)
	query := `SELECT payee,
			COUNT(*) AS total_bills,
			COALESCE(SUM(payable), 0) AS total_amount,
			MAX(created_at) AS last_payment_date
		FROM bills ` + where + `
		GROUP BY payee
		ORDER BY total_amount DESC, payee`

	rows := []domain.ContractorPaymentRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.ContractorPayments: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) SchemeExpenditure(ctx context.Context) ([]domain.SchemeExpenditureRow, error) {
	query := `SELECT scheme,
			COALESCE(SUM(allot_amount), 0) AS allocated,
			COALESCE(SUM(expenditure), 0) AS utilized,
			COALESCE(SUM(allot_amount), 0) - COALESCE(SUM(expenditure), 0) AS balance,
			CASE WHEN COALESCE(SUM(allot_amount), 0) = 0 THEN 0
				ELSE ROUND(SUM(expenditure) / SUM(allot_amount) * 100, 2)
			END AS utilization_percent
		FROM works
		GROUP BY scheme
		ORDER BY scheme`

	rows := []domain.SchemeExpenditureRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("reportRepo.SchemeExpenditure: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) DeductionRegister(ctx context.Context, filters domain.ReportFilters) ([]domain.DeductionRegisterRow, error) {
	where, args := dateClause("WHERE 1=1", "created_at", filters.From, filters.To, nil)
	query := `SELECT bill_no, created_at, payee,
			income_tax_amount, deposit_amount, cess_amount, cgst_amount, sgst_amount, total_deduction
		FROM bills ` + where + ` ORDER BY bill_no`

	rows := []domain.DeductionRegisterRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.DeductionRegister: %w", err)
	}
	return rows, nil
}
