package s3_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worksbill/internal/config"
	s3storage "worksbill/internal/storage/s3"
)

func TestBackupStore_PresignedURL_PathStyle(t *testing.T) {
	store, err := s3storage.NewBackupStore(context.Background(), &config.S3Config{
		Region:    "ap-south-1",
		Endpoint:  "http://localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio-secret",
	})
	require.NoError(t, err)

	url, err := store.DownloadURL(context.Background(), "worksbill-backups", "backups/20240401T000000Z.json", time.Hour)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/worksbill-backups/backups/20240401T000000Z.json?"), url)
	assert.Contains(t, url, "X-Amz-Expires=3600")
}
