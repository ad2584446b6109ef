package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOOptions configures an S3-compatible backend.
type MinIOOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// MinIOStore reads objects from an S3-compatible store.
type MinIOStore struct {
	client *minio.Client
}

func NewMinIOStore(opts MinIOOptions) (*MinIOStore, error) {
	if opts.Endpoint == "" {
		return nil, ErrNotConfigured
	}
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:      credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure:     opts.UseSSL,
		Region:     opts.Region,
		MaxRetries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinIOStore{client: client}, nil
}

// FetchText downloads the whole object; the bucket plays the role of the container.
func (s *MinIOStore) FetchText(ctx context.Context, bucket, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrap(bucket, key, err)
	}
	defer obj.Close()

	data, err := readLimited(obj)
	if err != nil {
		return nil, s.wrap(bucket, key, err)
	}
	return data, nil
}

func (s *MinIOStore) wrap(bucket, key string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%s/%s: %w", bucket, key, ErrNotFound)
	}
	var resp minio.ErrorResponse
	if errors.As(err, &resp) && resp.StatusCode == 404 {
		return fmt.Errorf("%s/%s: %w", bucket, key, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s/%s: %w", bucket, key, err)
}
