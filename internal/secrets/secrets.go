// Package secrets overlays configuration values stored in Azure Key Vault.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"

	"github.com/sevigo/ps-reviewer/internal/config"
)

// Secret names looked up in the vault.
const (
	SecretOpenAIKey               = "openai-key"
	SecretOpenAIEndpoint          = "openai-endpoint"
	SecretStorageConnectionString = "storage-connection-string"
	SecretSessionKey              = "secret-key"
)

// ErrSecretNotFound is returned by a Resolver for an unknown secret.
var ErrSecretNotFound = errors.New("secret not found")

// Resolver returns the current value of a named secret.
type Resolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// KeyVaultResolver reads secrets with the ambient Azure identity.
type KeyVaultResolver struct {
	client *azsecrets.Client
}

// NewKeyVaultResolver authenticates with DefaultAzureCredential, which covers
// managed identity, workload identity, environment credentials and the CLI.
func NewKeyVaultResolver(vaultURL string) (*KeyVaultResolver, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain azure credential: %w", err)
	}
	return NewKeyVaultResolverWithCredential(vaultURL, cred, nil)
}

// NewKeyVaultResolverWithCredential builds a resolver from an explicit credential.
func NewKeyVaultResolverWithCredential(vaultURL string, cred azcore.TokenCredential, opts *azsecrets.ClientOptions) (*KeyVaultResolver, error) {
	client, err := azsecrets.NewClient(vaultURL, cred, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create key vault client: %w", err)
	}
	return &KeyVaultResolver{client: client}, nil
}

// Resolve fetches the latest version of name.
func (k *KeyVaultResolver) Resolve(ctx context.Context, name string) (string, error) {
	resp, err := k.client.GetSecret(ctx, name, "", nil)
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == 404 {
			return "", fmt.Errorf("%s: %w", name, ErrSecretNotFound)
		}
		return "", fmt.Errorf("failed to get secret %s: %w", name, err)
	}
	if resp.Value == nil {
		return "", fmt.Errorf("%s: %w", name, ErrSecretNotFound)
	}
	return *resp.Value, nil
}

// Apply overwrites configuration fields with vault values. Secrets that are
// missing or unreadable leave the environment value in place; the failure is
// logged. It returns how many fields were overridden.
func Apply(ctx context.Context, cfg *config.Config, resolver Resolver, logger *slog.Logger) int {
	targets := []struct {
		name  string
		field *string
	}{
		{SecretOpenAIKey, &cfg.AI.APIKey},
		{SecretOpenAIEndpoint, &cfg.AI.Endpoint},
		{SecretStorageConnectionString, &cfg.Storage.ConnectionString},
		{SecretSessionKey, &cfg.Server.SecretKey},
	}

	applied := 0
	for _, t := range targets {
		value, err := resolver.Resolve(ctx, t.name)
		if err != nil {
			if errors.Is(err, ErrSecretNotFound) {
				logger.Debug("secret not present in key vault", "secret", t.name)
			} else {
				logger.Warn("failed to resolve secret from key vault", "secret", t.name, "error", err)
			}
			continue
		}
		if value == "" {
			continue
		}
		*t.field = value
		applied++
	}
	logger.Info("applied key vault secrets", "count", applied)
	return applied
}

// Load resolves secrets when cfg names a vault. A vault that cannot be
// reached is logged and the environment configuration is kept.
func Load(ctx context.Context, cfg *config.Config, logger *slog.Logger) {
	if cfg.KeyVaultURL == "" {
		return
	}
	resolver, err := NewKeyVaultResolver(cfg.KeyVaultURL)
	if err != nil {
		logger.Error("key vault unavailable, using environment configuration", "url", cfg.KeyVaultURL, "error", err)
		return
	}
	Apply(ctx, cfg, resolver, logger)
}
