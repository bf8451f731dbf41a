package service

import (
	"context"

	"worksbill/internal/domain"
	"worksbill/internal/port"
)

// ReportService provides payment and expenditure reports over bills and works.
type ReportService interface {
	PaymentRegister(ctx context.Context, filters domain.ReportFilters) ([]domain.PaymentRegisterRow, error)
	ContractorPayments(ctx context.Context, filters domain.ReportFilters) ([]domain.ContractorPaymentRow, error)
	SchemeExpenditure(ctx context.Context) ([]domain.SchemeExpenditureRow, error)
	DeductionRegister(ctx context.Context, filters domain.ReportFilters) ([]domain.DeductionRegisterRow, error)
}

type reportService struct {
	reportRepo port.ReportRepository
}

func NewReportService(reportRepo port.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func checkRange(filters domain.ReportFilters) error {
	if filters.From != nil && filters.To != nil && filters.From.After(*filters.To) {
		return domain.ErrInvalidDateRange
	}
	return nil
}

func (s *reportService) PaymentRegister(ctx context.Context, filters domain.ReportFilters) ([]domain.PaymentRegisterRow, error) {
	if err := checkRange(filters); err != nil {
		return nil, err
	}
	return s.reportRepo.PaymentRegister(ctx, filters)
}

func (s *reportService) ContractorPayments(ctx context.Context, filters domain.ReportFilters) ([]domain.ContractorPaymentRow, error) {
	if err := checkRange(filters); err != nil {
		return nil, err
	}
	return s.reportRepo.ContractorPayments(ctx, filters)
}

// SchemeExpenditure covers every work. Expenditure is cumulative, so a date range does not apply.
func (s *reportService) SchemeExpenditure(ctx context.Context) ([]domain.SchemeExpenditureRow, error) {
	return s.reportRepo.SchemeExpenditure(ctx)
}

func (s *reportService) DeductionRegister(ctx context.Context, filters domain.ReportFilters) ([]domain.DeductionRegisterRow, error) {
	if err := checkRange(filters); err != nil {
		return nil, err
	}
	return s.reportRepo.DeductionRegister(ctx, filters)
}
