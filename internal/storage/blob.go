// Package storage fetches documents from object storage. Azure Blob Storage is
// the primary backend; any S3-compatible store is reachable through MinIO.
package storage

import (
	"errors"
	"fmt"
	"io"

	"github.com/sevigo/ps-reviewer/internal/config"
	"github.com/sevigo/ps-reviewer/internal/core"
)

// maxBlobBytes caps how much of a single object is read into memory.
const maxBlobBytes = 8 << 20

var (
	// ErrNotConfigured is returned by NewBlobStore when the selected backend
	// has no credentials.
	ErrNotConfigured = errors.New("blob storage is not configured")

	// ErrNotFound is wrapped into fetch errors for a missing container or object.
	ErrNotFound = errors.New("blob not found")
)

// NewBlobStore builds the fetcher for the configured provider.
func NewBlobStore(cfg *config.Config) (core.BlobFetcher, error) {
	if !cfg.HasStorageConfig() {
		return nil, ErrNotConfigured
	}

	switch cfg.Storage.Provider {
	case config.StorageProviderMinIO:
		store, err := NewMinIOStore(MinIOOptions{
			Endpoint:  cfg.Storage.MinIOEndpoint,
			AccessKey: cfg.Storage.MinIOAccessKey,
			SecretKey: cfg.Storage.MinIOSecretKey,
			UseSSL:    cfg.Storage.MinIOUseSSL,
			Region:    cfg.Storage.MinIORegion,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageProviderAzure, "":
		store, err := NewAzureBlobStore(cfg.Storage.ConnectionString)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Storage.Provider)
	}
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBlobBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxBlobBytes {
		return nil, fmt.Errorf("object exceeds %d bytes", maxBlobBytes)
	}
	return data, nil
}
