package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"portfolio-backend/internal/config"
)

// MinIOStorage là object-storage driver thay thế cho local disk
// Key layout giống hệt local: <folder>/<filename>
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage khởi tạo MinIO client và ensure bucket tồn tại
func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL, // false cho local, true cho production
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

func (s *MinIOStorage) Write(ctx context.Context, folder, filename string, data []byte) (string, error) {
	if !ValidFolder(folder) {
		return "", fmt.Errorf("%w: %s", ErrInvalidFolder, folder)
	}

	key := fmt.Sprintf("%s/%s", folder, filename)

	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: "image/webp",
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: minio put %s: %v", ErrStorageWrite, key, err)
	}

	return key, nil
}

// Delete xóa object - advisory, object không tồn tại không phải lỗi
// (RemoveObject của MinIO vốn không báo lỗi với key không tồn tại)
func (s *MinIOStorage) Delete(ctx context.Context, folder, filename string) error {
	if !ValidFolder(folder) {
		return fmt.Errorf("%w: %s", ErrInvalidFolder, folder)
	}

	key := fmt.Sprintf("%s/%s", folder, filename)
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	return nil
}
