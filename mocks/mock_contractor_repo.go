package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"worksbill/internal/domain"
)

// MockContractorRepo is a mock implementation of port.ContractorRepository.
type MockContractorRepo struct {
	mock.Mock
}

func (m *MockContractorRepo) Create(ctx context.Context, contractor *domain.Contractor) error {
	args := m.Called(ctx, contractor)
	return args.Error(0)
}

func (m *MockContractorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contractor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contractor), args.Error(1)
}

func (m *MockContractorRepo) List(ctx context.Context, offset, limit int) ([]domain.Contractor, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Contractor), args.Int(1), args.Error(2)
}
