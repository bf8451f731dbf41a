package port

import (
	"context"

	"worksbill/internal/domain"
)

// ReportRepository provides aggregation queries for reports.
type ReportRepository interface {
	PaymentRegister(ctx context.Context, filters domain.ReportFilters) ([]domain.PaymentRegisterRow, error)
	ContractorPayments(ctx context.Context, filters domain.ReportFilters) ([]domain.ContractorPaymentRow, error)
	SchemeExpenditure(ctx context.Context) ([]domain.SchemeExpenditureRow, error)
	DeductionRegister(ctx context.Context, filters domain.ReportFilters) ([]domain.DeductionRegisterRow, error)
}
