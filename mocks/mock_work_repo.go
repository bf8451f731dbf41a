package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"worksbill/internal/domain"
)

// MockWorkRepo is a mock implementation of port.WorkRepository.
type MockWorkRepo struct {
	mock.Mock
}

func (m *MockWorkRepo) Create(ctx context.Context, work *domain.Work) error {
	args := m.Called(ctx, work)
	return args.Error(0)
}

func (m *MockWorkRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Work, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Work), args.Error(1)
}

func (m *MockWorkRepo) List(ctx context.Context, offset, limit int) ([]domain.Work, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Work), args.Int(1), args.Error(2)
}

func (m *MockWorkRepo) ListByHead(ctx context.Context, majorHead, scheme string) ([]domain.Work, error) {
	args := m.Called(ctx, majorHead, scheme)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Work), args.Error(1)
}

func (m *MockWorkRepo) ListByCode(ctx context.Context, workcode string) ([]domain.Work, error) {
	args := m.Called(ctx, workcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Work), args.Error(1)
}
