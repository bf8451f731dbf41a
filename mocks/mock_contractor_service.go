package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"worksbill/internal/domain"
	"worksbill/internal/service"
)

// MockContractorService is a mock implementation of service.ContractorService.
type MockContractorService struct {
	mock.Mock
}

func (m *MockContractorService) Create(ctx context.Context, input *service.CreateContractorInput) (*domain.Contractor, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contractor), args.Error(1)
}

func (m *MockContractorService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contractor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contractor), args.Error(1)
}

func (m *MockContractorService) List(ctx context.Context, offset, limit int) ([]domain.Contractor, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Contractor), args.Int(1), args.Error(2)
}
