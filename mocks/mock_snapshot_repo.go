package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"worksbill/internal/domain"
)

// MockSnapshotRepo is a mock implementation of port.SnapshotRepository.
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}
