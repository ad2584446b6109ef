package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/sevigo/ps-reviewer/internal/config"
	"github.com/sevigo/ps-reviewer/internal/core"
)

var (
	// ErrNotConfigured means the completion backend lacks endpoint or key.
	ErrNotConfigured = errors.New("completion service is not configured")

	// ErrUnavailable wraps every error returned by an UnavailableCompleter.
	ErrUnavailable = errors.New("completion service unavailable")

	// ErrEmptyResponse means the backend answered without any content.
	ErrEmptyResponse = errors.New("completion service returned no choices")
)

// NewCompleter builds the backend selected by LLM_PROVIDER. A backend that
// cannot be constructed is replaced by an UnavailableCompleter so that the
// failure is reported on each review instead of stopping the process.
func NewCompleter(ctx context.Context, cfg *config.Config, logger *slog.Logger) core.Completer {
	completer, err := newCompleter(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to create completion client", "provider", cfg.AI.LLMProvider, "error", err)
		return UnavailableCompleter(err)
	}
	return completer
}

func newCompleter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.Completer, error) {
	switch cfg.AI.LLMProvider {
	case config.LLMProviderGemini:
		logger.Info("using Gemini LLM provider", "model", cfg.AI.GeneratorModel)
		if cfg.AI.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set in environment for gemini provider")
		}
		model, err := gemini.New(ctx,
			gemini.WithModel(cfg.AI.GeneratorModel),
			gemini.WithAPIKey(cfg.AI.GeminiAPIKey),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGoframeCompleter(model, cfg.AI.GeneratorModel, logger), nil

	case config.LLMProviderOllama:
		logger.Info("using Ollama LLM provider", "model", cfg.AI.GeneratorModel, "host", cfg.AI.OllamaHost)
		model, err := ollama.New(
			ollama.WithServerURL(cfg.AI.OllamaHost),
			ollama.WithHTTPClient(newLLMHTTPClient()),
			ollama.WithModel(cfg.AI.GeneratorModel),
			ollama.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewGoframeCompleter(model, cfg.AI.GeneratorModel, logger), nil

	case config.LLMProviderAzure, "":
		logger.Info("using Azure OpenAI provider", "deployment", cfg.AI.DeploymentName, "api_version", cfg.AI.APIVersion)
		c, err := NewAzureOpenAICompleter(cfg.AI, nil)
		if err != nil {
			return nil, err
		}
		return c, nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.AI.LLMProvider)
	}
}

// newLLMHTTPClient gives slow model backends generous timeouts.
func newLLMHTTPClient() *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   5 * time.Minute,
	}
}

// AzureOpenAICompleter calls a chat-completion deployment on Azure OpenAI.
type AzureOpenAICompleter struct {
	client     openai.Client
	deployment string
}

// NewAzureOpenAICompleter builds the client from endpoint, key, deployment
// name and API version. Client retries are disabled: one request per call.
// A nil httpClient keeps the SDK default.
func NewAzureOpenAICompleter(cfg config.AIConfig, httpClient *http.Client) (*AzureOpenAICompleter, error) {
	if cfg.Endpoint == "" || cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if cfg.DeploymentName == "" {
		return nil, errors.New("OPENAI_DEPLOYMENT_NAME is not set")
	}
	if cfg.APIVersion == "" {
		return nil, errors.New("OPENAI_API_VERSION is not set")
	}

	opts := []option.RequestOption{
		azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
		azure.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &AzureOpenAICompleter{
		client:     openai.NewClient(opts...),
		deployment: cfg.DeploymentName,
	}, nil
}

func (c *AzureOpenAICompleter) Complete(ctx context.Context, req core.CompletionRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.deployment),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemMessage),
			openai.UserMessage(req.UserMessage),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	params.Temperature = openai.Float(req.Temperature)

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// GoframeCompleter adapts a goframe model. The model takes a single prompt, so
// the system message is prepended to it.
type GoframeCompleter struct {
	model  llms.Model
	name   string
	logger *slog.Logger
}

func NewGoframeCompleter(model llms.Model, name string, logger *slog.Logger) *GoframeCompleter {
	return &GoframeCompleter{model: model, name: name, logger: logger}
}

func (c *GoframeCompleter) Complete(ctx context.Context, req core.CompletionRequest) (string, error) {
	prompt := req.UserMessage
	if req.SystemMessage != "" {
		prompt = req.SystemMessage + "\n\n" + req.UserMessage
	}

	c.logger.Debug("sending prompt to model", "model", c.name, "tokens", countTokens(ctx, c.model, prompt))

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := c.model.Call(ctx, prompt, opts...)
	if err != nil {
		return "", fmt.Errorf("model %s call failed: %w", c.name, err)
	}
	if strings.TrimSpace(resp) == "" {
		return "", ErrEmptyResponse
	}
	return resp, nil
}

type unavailableCompleter struct {
	err error
}

// UnavailableCompleter fails every call with err wrapped in ErrUnavailable.
func UnavailableCompleter(err error) core.Completer {
	return unavailableCompleter{err: err}
}

func (u unavailableCompleter) Complete(context.Context, core.CompletionRequest) (string, error) {
	return "", fmt.Errorf("%w: %w", ErrUnavailable, u.err)
}
