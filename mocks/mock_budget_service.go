package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"worksbill/internal/domain"
	"worksbill/internal/service"
)

// MockBudgetService is a mock implementation of service.BudgetService.
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) Create(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetEntry), args.Error(1)
}

func (m *MockBudgetService) List(ctx context.Context, billType domain.BillType) ([]domain.BudgetEntry, error) {
	args := m.Called(ctx, billType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEntry), args.Error(1)
}

func (m *MockBudgetService) Options(ctx context.Context, billType domain.BillType, majorHead string) (*service.BudgetOptions, error) {
	args := m.Called(ctx, billType, majorHead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BudgetOptions), args.Error(1)
}

func (m *MockBudgetService) FindEntry(ctx context.Context, billType domain.BillType, majorHead, scheme string) (*domain.BudgetEntry, error) {
	args := m.Called(ctx, billType, majorHead, scheme)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetEntry), args.Error(1)
}
