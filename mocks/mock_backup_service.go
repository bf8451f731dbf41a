package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"worksbill/internal/service"
)

// MockBackupService is a mock implementation of service.BackupService.
type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) Create(ctx context.Context) (*service.BackupResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BackupResult), args.Error(1)
}

func (m *MockBackupService) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
