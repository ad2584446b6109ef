package secrets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/ps-reviewer/internal/config"
)

type mapResolver map[string]string

func (m mapResolver) Resolve(_ context.Context, name string) (string, error) {
	if name == SecretStorageConnectionString {
		return "", errors.New("403 Forbidden")
	}
	v, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrSecretNotFound)
	}
	return v, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestApply(t *testing.T) {
	cfg := &config.Config{
		Server:  config.ServerConfig{SecretKey: "from-env"},
		Storage: config.StorageConfig{ConnectionString: "env-connection"},
		AI:      config.AIConfig{Endpoint: "https://env.openai.azure.com", APIKey: "env-key"},
	}

	resolver := mapResolver{
		SecretOpenAIKey:  "vault-key",
		SecretSessionKey: "",
	}

	applied := Apply(context.Background(), cfg, resolver, discardLogger())

	assert.Equal(t, 1, applied)
	assert.Equal(t, "vault-key", cfg.AI.APIKey)
	assert.Equal(t, "https://env.openai.azure.com", cfg.AI.Endpoint, "missing secret keeps env value")
	assert.Equal(t, "env-connection", cfg.Storage.ConnectionString, "unreadable secret keeps env value")
	assert.Equal(t, "from-env", cfg.Server.SecretKey, "empty secret keeps env value")
}

func TestApply_AllSecrets(t *testing.T) {
	cfg := &config.Config{}
	resolver := mapResolver{
		SecretOpenAIKey:      "k",
		SecretOpenAIEndpoint: "https://vault.openai.azure.com",
		SecretSessionKey:     "s",
	}

	assert.Equal(t, 3, Apply(context.Background(), cfg, resolver, discardLogger()))
	assert.True(t, cfg.HasOpenAIConfig())
	assert.Equal(t, "s", cfg.Server.SecretKey)
}

func TestLoad_NoVaultIsNoop(t *testing.T) {
	cfg := &config.Config{AI: config.AIConfig{APIKey: "env"}}
	Load(context.Background(), cfg, discardLogger())
	assert.Equal(t, "env", cfg.AI.APIKey)
}
