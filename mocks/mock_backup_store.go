package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"worksbill/internal/port"
)

// MockBackupStore is a mock implementation of port.BackupStore.
type MockBackupStore struct {
	mock.Mock
}

func (m *MockBackupStore) Put(ctx context.Context, obj port.BackupObject) (*port.StoredBackup, error) {
	args := m.Called(ctx, obj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.StoredBackup), args.Error(1)
}

func (m *MockBackupStore) Remove(ctx context.Context, bucket, key string) error {
	return m.Called(ctx, bucket, key).Error(0)
}

func (m *MockBackupStore) DownloadURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, bucket, key, ttl)
	return args.String(0), args.Error(1)
}
