package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/sevigo/ps-reviewer/internal/logger"
)

const (
	StorageProviderAzure = "azure"
	StorageProviderMinIO = "minio"

	LLMProviderAzure  = "azure"
	LLMProviderOllama = "ollama"
	LLMProviderGemini = "gemini"
)

// Config holds the application's configuration values. It is built once at
// startup and handed to every component that needs it.
type Config struct {
	Server      ServerConfig
	Storage     StorageConfig
	AI          AIConfig
	Logging     logger.Config
	Telemetry   TelemetryConfig
	KeyVaultURL string
	Features    Features
}

type ServerConfig struct {
	Host           string
	Port           int
	Debug          bool
	SecretKey      string
	MaxUploadBytes int64
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig describes where the standards document lives.
type StorageConfig struct {
	Provider         string
	ConnectionString string
	Container        string
	Blob             string
	MinIOEndpoint    string
	MinIOAccessKey   string
	MinIOSecretKey   string
	MinIOUseSSL      bool
	MinIORegion      string
}

// AIConfig describes the completion service.
type AIConfig struct {
	LLMProvider    string
	Endpoint       string
	APIKey         string
	DeploymentName string
	APIVersion     string
	OllamaHost     string
	GeneratorModel string
	GeminiAPIKey   string
}

type TelemetryConfig struct {
	ConnectionString string
}

// HasOpenAIConfig reports whether both the completion endpoint and key are set.
func (c *Config) HasOpenAIConfig() bool {
	return c.AI.Endpoint != "" && c.AI.APIKey != ""
}

// HasStorageConfig reports whether the configured storage backend has the
// credentials it needs.
func (c *Config) HasStorageConfig() bool {
	switch c.Storage.Provider {
	case StorageProviderMinIO:
		return c.Storage.MinIOEndpoint != ""
	default:
		return c.Storage.ConnectionString != ""
	}
}

// HasMonitoring reports whether a telemetry sink is configured.
func (c *Config) HasMonitoring() bool {
	return c.Telemetry.ConnectionString != ""
}

// Validate checks the values that would make the server unusable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.Server.MaxUploadBytes)
	}
	switch c.Storage.Provider {
	case StorageProviderAzure, StorageProviderMinIO:
	default:
		return fmt.Errorf("unsupported storage provider: %s", c.Storage.Provider)
	}
	switch c.AI.LLMProvider {
	case LLMProviderAzure, LLMProviderOllama, LLMProviderGemini:
	default:
		return fmt.Errorf("unsupported LLM provider: %s", c.AI.LLMProvider)
	}
	if c.Storage.Container == "" || c.Storage.Blob == "" {
		return errors.New("STANDARDS_CONTAINER and STANDARDS_BLOB must not be empty")
	}
	return nil
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets defaults, and validates the result. Names used by earlier deployments
// (storageConnectionString, openAIKey, ...) are accepted as aliases.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Error("failed to read config file", "error", err)
		}
	}
	return load(v, os.Environ())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 5000)
	v.SetDefault("DEBUG", false)
	v.SetDefault("SECRET_KEY", "dev-secret-key-change-in-production")
	v.SetDefault("MAX_UPLOAD_BYTES", 16*1024*1024)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("STORAGE_PROVIDER", StorageProviderAzure)
	v.SetDefault("STANDARDS_CONTAINER", "powershell-standards")
	v.SetDefault("STANDARDS_BLOB", "TestCodingStandards.txt")
	v.SetDefault("LLM_PROVIDER", LLMProviderAzure)
	v.SetDefault("OPENAI_API_VERSION", "2024-02-01")
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("GENERATOR_MODEL_NAME", "gemma3:latest")
}

// legacyAliases maps each key to the older variable names it may still be set under.
var legacyAliases = map[string][]string{
	"STORAGE_CONNECTION_STRING":             {"storageConnectionString"},
	"OPENAI_ENDPOINT":                       {"openAIEndpoint"},
	"OPENAI_KEY":                            {"openAIKey"},
	"OPENAI_DEPLOYMENT_NAME":                {"openAIDeploymentName"},
	"APP_ENV":                               {"FLASK_ENV"},
	"KEY_VAULT_URL":                         {"keyVaultUrl"},
	"APPLICATIONINSIGHTS_CONNECTION_STRING": {},
}

// bindEnv wires each key to its canonical variable plus any legacy aliases.
func bindEnv(v *viper.Viper) error {
	for key, aliases := range legacyAliases {
		if err := v.BindEnv(append([]string{key, key}, aliases...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// applyFileAliases copies a legacy key read from the config file onto its
// canonical key when nothing else has set the canonical one.
func applyFileAliases(v *viper.Viper) {
	for key, aliases := range legacyAliases {
		if v.GetString(key) != "" {
			continue
		}
		for _, alias := range aliases {
			if !v.InConfig(alias) {
				continue
			}
			if val := v.GetString(alias); val != "" {
				v.Set(key, val)
				break
			}
		}
	}
}

func load(v *viper.Viper, environ []string) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, err
	}
	applyFileAliases(v)

	debug := v.GetBool("DEBUG") || strings.EqualFold(v.GetString("APP_ENV"), "development")

	logLevel := strings.ToLower(v.GetString("LOG_LEVEL"))
	if debug {
		logLevel = "debug"
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("HOST"),
			Port:           v.GetInt("PORT"),
			Debug:          debug,
			SecretKey:      v.GetString("SECRET_KEY"),
			MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		},
		Storage: StorageConfig{
			Provider:         strings.ToLower(v.GetString("STORAGE_PROVIDER")),
			ConnectionString: v.GetString("STORAGE_CONNECTION_STRING"),
			Container:        v.GetString("STANDARDS_CONTAINER"),
			Blob:             v.GetString("STANDARDS_BLOB"),
			MinIOEndpoint:    v.GetString("MINIO_ENDPOINT"),
			MinIOAccessKey:   v.GetString("MINIO_ACCESS_KEY"),
			MinIOSecretKey:   v.GetString("MINIO_SECRET_KEY"),
			MinIOUseSSL:      v.GetBool("MINIO_USE_SSL"),
			MinIORegion:      v.GetString("MINIO_REGION"),
		},
		AI: AIConfig{
			LLMProvider:    strings.ToLower(v.GetString("LLM_PROVIDER")),
			Endpoint:       v.GetString("OPENAI_ENDPOINT"),
			APIKey:         v.GetString("OPENAI_KEY"),
			DeploymentName: v.GetString("OPENAI_DEPLOYMENT_NAME"),
			APIVersion:     v.GetString("OPENAI_API_VERSION"),
			OllamaHost:     v.GetString("OLLAMA_HOST"),
			GeneratorModel: v.GetString("GENERATOR_MODEL_NAME"),
			GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
		},
		Logging: logger.Config{
			Level:  logLevel,
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		Telemetry: TelemetryConfig{
			ConnectionString: v.GetString("APPLICATIONINSIGHTS_CONNECTION_STRING"),
		},
		KeyVaultURL: v.GetString("KEY_VAULT_URL"),
		Features:    loadFeatures(v, environ),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
