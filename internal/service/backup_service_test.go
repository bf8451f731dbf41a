package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"worksbill/internal/domain"
	"worksbill/internal/port"
	"worksbill/internal/service"
	"worksbill/mocks"
)

func TestBackupService_Create_UploadsSnapshot(t *testing.T) {
	snaps := new(mocks.MockSnapshotRepo)
	store := new(mocks.MockBackupStore)
	svc := service.NewBackupService(snaps, store, "worksbill-backups", "/backups/")

	snaps.On("Snapshot", mock.Anything).Return(&domain.Snapshot{
		Contractors: []domain.Contractor{{Name: "Sharma Constructions"}},
		Bills:       []domain.Bill{{BillNo: 1}, {BillNo: 2}},
	}, nil)

	var uploaded port.BackupObject
	store.On("Put", mock.Anything, mock.AnythingOfType("port.BackupObject")).
		Run(func(args mock.Arguments) {
			uploaded = args.Get(1).(port.BackupObject)
		}).
		Return(&port.StoredBackup{Location: "s3://worksbill-backups/x"}, nil)
	store.On("DownloadURL", mock.Anything, "worksbill-backups", mock.Anything, time.Hour).
		Return("https://signed", nil)

	res, err := svc.Create(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Key, "backups/"))
	assert.True(t, strings.HasSuffix(res.Key, ".json"))
	assert.Equal(t, res.Key, uploaded.Key)
	assert.Equal(t, "worksbill-backups", uploaded.Bucket)
	assert.Equal(t, "https://signed", res.DownloadURL)
	assert.Equal(t, 1, res.Contractors)
	assert.Equal(t, 2, res.Bills)

	var decoded domain.Snapshot
	require.NoError(t, json.Unmarshal(uploaded.Body, &decoded))
	assert.Len(t, decoded.Bills, 2)
	assert.False(t, decoded.TakenAt.IsZero())
}

func TestBackupService_Create_UploadFailure(t *testing.T) {
	snaps := new(mocks.MockSnapshotRepo)
	store := new(mocks.MockBackupStore)
	svc := service.NewBackupService(snaps, store, "b", "backups")

	snaps.On("Snapshot", mock.Anything).Return(&domain.Snapshot{}, nil)
	store.On("Put", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	_, err := svc.Create(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackupFailed)
	store.AssertNotCalled(t, "DownloadURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBackupService_Remove(t *testing.T) {
	snaps := new(mocks.MockSnapshotRepo)
	store := new(mocks.MockBackupStore)
	svc := service.NewBackupService(snaps, store, "b", "backups")

	store.On("Remove", mock.Anything, "b", "backups/20240401T000000Z.json").Return(nil)
	require.NoError(t, svc.Remove(context.Background(), "backups/20240401T000000Z.json"))

	assert.Error(t, svc.Remove(context.Background(), "  "))
	store.AssertExpectations(t)
}
