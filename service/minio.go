package service

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rabinshresthaaa/CoverPage/config"
)

// MinioAssetSource reads assets from a MinIO (or S3 compatible) bucket.
type MinioAssetSource struct {
	client *minio.Client
	bucket string
	config *config.MinioConfig
}

func NewMinioAssetSource(cfg *config.MinioConfig) (*MinioAssetSource, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioAssetSource{
		client: client,
		bucket: cfg.Bucket,
		config: cfg,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *MinioAssetSource) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// Load fetches bucket/name. A missing object or bucket is ErrMissingAsset.
func (s *MinioAssetSource) Load(ctx context.Context, name string) (Asset, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %s/%s: %v", ErrMissingAsset, s.bucket, name, err)
	}
	defer obj.Close()

	// GetObject is lazy; Stat surfaces NoSuchKey before reading.
	if _, err := obj.Stat(); err != nil {
		return Asset{}, fmt.Errorf("%w: %s/%s: %s", ErrMissingAsset, s.bucket, name, describeMinioError(err))
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: reading %s/%s: %v", ErrMissingAsset, s.bucket, name, err)
	}
	return Asset{Name: name, Data: data}, nil
}

// UploadAsset stores an asset so later Loads can find it.
func (s *MinioAssetSource) UploadAsset(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, name, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload asset: %w", err)
	}

	return nil
}

// ObjectURL returns the plain URL of an asset, for logs and CLI output.
func (s *MinioAssetSource) ObjectURL(name string) string {
	protocol := "http"
	if s.config.UseSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.config.Endpoint, s.bucket, name)
}

func describeMinioError(err error) string {
	resp := minio.ToErrorResponse(err)
	if resp.Code != "" {
		return resp.Code
	}
	return err.Error()
}
