package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"worksbill/internal/domain"
)

// MockBudgetRepo is a mock implementation of port.BudgetRepository.
type MockBudgetRepo struct {
	mock.Mock
}

func (m *MockBudgetRepo) Create(ctx context.Context, entry *domain.BudgetEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBudgetRepo) ListByType(ctx context.Context, billType domain.BillType) ([]domain.BudgetEntry, error) {
	args := m.Called(ctx, billType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEntry), args.Error(1)
}
