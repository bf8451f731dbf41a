package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"worksbill/internal/domain"
	"worksbill/internal/service"
)

// MockWorkService is a mock implementation of service.WorkService.
type MockWorkService struct {
	mock.Mock
}

func (m *MockWorkService) Create(ctx context.Context, work *domain.Work) (*domain.Work, error) {
	args := m.Called(ctx, work)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *MockWorkService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *MockWorkService) List(ctx context.Context, offset, limit int) ([]domain.Work, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Work), args.Int(1), args.Error(2)
}

func (m *MockWorkService) Options(ctx context.Context, query service.WorkOptionsQuery) (*service.WorkOptions, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WorkOptions), args.Error(1)
}

func (m *MockWorkService) Resolve(ctx context.Context, majorHead, scheme, workcode, nomenclature string) (*domain.Work, error) {
	args := m.Called(ctx, majorHead, scheme, workcode, nomenclature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}
