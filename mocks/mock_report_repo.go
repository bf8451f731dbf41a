package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"worksbill/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) PaymentRegister(ctx context.Context, filters domain.ReportFilters) ([]domain.PaymentRegisterRow, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRegisterRow), args.Error(1)
}

func (m *MockReportRepo) ContractorPayments(ctx context.Context, filters domain.ReportFilters) ([]domain.ContractorPaymentRow, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContractorPaymentRow), args.Error(1)
}

func (m *MockReportRepo) SchemeExpenditure(ctx context.Context) ([]domain.SchemeExpenditureRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SchemeExpenditureRow), args.Error(1)
}

func (m *MockReportRepo) DeductionRegister(ctx context.Context, filters domain.ReportFilters) ([]domain.DeductionRegisterRow, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeductionRegisterRow), args.Error(1)
}
