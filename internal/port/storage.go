package port

import (
	"context"
	"time"
)

// BackupObject is an encoded snapshot ready to be stored.
type BackupObject struct {
	Bucket string
	Key    string
	Body   []byte
}

// StoredBackup locates a snapshot after upload.
type StoredBackup struct {
	Location  string
	VersionID string
}

// BackupStore keeps JSON table snapshots in object storage.
type BackupStore interface {
	Put(ctx context.Context, obj BackupObject) (*StoredBackup, error)
	// Remove returns domain.ErrNotFound when the key does not exist.
	Remove(ctx context.Context, bucket, key string) error
	DownloadURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
}
