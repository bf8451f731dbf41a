package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"worksbill/internal/config"
	"worksbill/internal/domain"
	"worksbill/internal/port"
)

type backupStore struct {
	client    *s3.Client
	presigner *s3.PresignClient
	uploader  *manager.Uploader
}

// NewBackupStore creates an S3-backed BackupStore for table snapshots. A custom
// endpoint (MinIO, LocalStack) switches to path-style addressing.
func NewBackupStore(ctx context.Context, cfg *config.S3Config) (port.BackupStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &backupStore{
		client:    client,
		presigner: s3.NewPresignClient(client),
		uploader: manager.NewUploader(client, func(u *manager.Uploader) {
			u.PartSize = 8 * 1024 * 1024
		}),
	}, nil
}

// Put uploads obj as an encrypted JSON attachment.
func (s *backupStore) Put(ctx context.Context, obj port.BackupObject) (*port.StoredBackup, error) {
	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(obj.Bucket),
		Key:                  aws.String(obj.Key),
		Body:                 bytes.NewReader(obj.Body),
		ContentLength:        aws.Int64(int64(len(obj.Body))),
		ContentType:          aws.String("application/json"),
		ContentDisposition:   aws.String(fmt.Sprintf("attachment; filename=%q", path.Base(obj.Key))),
		ServerSideEncryption: types.ServerSideEncryptionAes256,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 put %s: %w", obj.Key, err)
	}
	return &port.StoredBackup{
		Location:  result.Location,
		VersionID: aws.ToString(result.VersionID),
	}, nil
}

// Remove deletes a snapshot. S3 reports success for missing keys, so the key
// is checked with HeadObject first.
func (s *backupStore) Remove(ctx context.Context, bucket, key string) error {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return fmt.Errorf("backup %s: %w", key, domain.ErrNotFound)
		}
		return fmt.Errorf("s3 head %s: %w", key, err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

// DownloadURL returns a presigned GET link valid for ttl.
func (s *backupStore) DownloadURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s: %w", key, err)
	}
	return req.URL, nil
}
