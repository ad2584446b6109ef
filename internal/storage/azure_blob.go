package storage

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzureBlobStore reads objects from an Azure Storage account.
type AzureBlobStore struct {
	client *azblob.Client
}

// NewAzureBlobStore builds a client from a storage account connection string.
// Each download is attempted once; a failure goes straight to the caller's fallback.
func NewAzureBlobStore(connectionString string) (*AzureBlobStore, error) {
	if connectionString == "" {
		return nil, ErrNotConfigured
	}
	opts := &azblob.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1},
		},
	}
	client, err := azblob.NewClientFromConnectionString(connectionString, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client: %w", err)
	}
	return &AzureBlobStore{client: client}, nil
}

// FetchText downloads the whole blob.
func (s *AzureBlobStore) FetchText(ctx context.Context, container, key string) ([]byte, error) {
	resp, err := s.client.DownloadStream(ctx, container, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, fmt.Errorf("%s/%s: %w", container, key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download %s/%s: %w", container, key, err)
	}
	defer resp.Body.Close()

	data, err := readLimited(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", container, key, err)
	}
	return data, nil
}
