package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"worksbill/internal/domain"
	"worksbill/internal/port"
)

const backupURLExpiry = time.Hour

// BackupResult describes an uploaded snapshot.
type BackupResult struct {
	Key         string    `json:"key"`
	Location    string    `json:"location"`
	DownloadURL string    `json:"download_url"`
	TakenAt     time.Time `json:"taken_at"`
	Contractors int       `json:"contractors"`
	Works       int       `json:"works"`
	Budgets     int       `json:"budgets"`
	Bills       int       `json:"bills"`
}

// BackupService writes JSON snapshots of every table to object storage.
type BackupService interface {
	Create(ctx context.Context) (*BackupResult, error)
	Remove(ctx context.Context, key string) error
}

type backupService struct {
	snapshots port.SnapshotRepository
	store     port.BackupStore
	bucket    string
	prefix    string
	now       func() time.Time
}

// NewBackupService creates a new BackupService implementation.
func NewBackupService(snapshots port.SnapshotRepository, store port.BackupStore, bucket, prefix string) BackupService {
	return &backupService{
		snapshots: snapshots,
		store:     store,
		bucket:    bucket,
		prefix:    strings.Trim(prefix, "/"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *backupService) Create(ctx context.Context) (*BackupResult, error) {
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	snap.TakenAt = s.now()

	body, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}

	key := path.Join(s.prefix, snap.TakenAt.Format("20060102T150405Z")+".json")
	out, err := s.store.Put(ctx, port.BackupObject{Bucket: s.bucket, Key: key, Body: body})
	if err != nil {
		log.Printf("backupService.Create: upload of %s failed: %v", key, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrBackupFailed, err)
	}

	url, err := s.store.DownloadURL(ctx, s.bucket, key, backupURLExpiry)
	if err != nil {
		// the object is stored; only the link is missing
		log.Printf("backupService.Create: presigning %s failed: %v", key, err)
		url = ""
	}

	log.Printf("backupService.Create: uploaded %s (%d bytes)", key, len(body))
	return &BackupResult{
		Key:         key,
		Location:    out.Location,
		DownloadURL: url,
		TakenAt:     snap.TakenAt,
		Contractors: len(snap.Contractors),
		Works:       len(snap.Works),
		Budgets:     len(snap.Budgets),
		Bills:       len(snap.Bills),
	}, nil
}

func (s *backupService) Remove(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("backup key is required: %w", domain.ErrNotFound)
	}
	if err := s.store.Remove(ctx, s.bucket, key); err != nil {
		return fmt.Errorf("deleting backup %s: %w", key, err)
	}
	log.Printf("backupService.Remove: deleted %s", key)
	return nil
}
