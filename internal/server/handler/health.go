package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sevigo/ps-reviewer/internal/config"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status                  string `json:"status" yaml:"status"`
	HasOpenAIConfig         bool   `json:"has_openai_config" yaml:"has_openai_config"`
	HasStorageConfig        bool   `json:"has_storage_config" yaml:"has_storage_config"`
	HasMonitoring           bool   `json:"has_monitoring" yaml:"has_monitoring"`
	EnhancedAnalysisEnabled bool   `json:"enhanced_analysis_enabled" yaml:"enhanced_analysis_enabled"`
}

// Health reports which integrations are configured. It never touches them.
func Health(cfg *config.Config) HealthResponse {
	return HealthResponse{
		Status:                  "healthy",
		HasOpenAIConfig:         cfg.HasOpenAIConfig(),
		HasStorageConfig:        cfg.HasStorageConfig(),
		HasMonitoring:           cfg.HasMonitoring(),
		EnhancedAnalysisEnabled: cfg.Features.EnhancedAnalysis(),
	}
}

// HealthHandler serves the health check used by the hosting platform.
type HealthHandler struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewHealthHandler(cfg *config.Config, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{cfg: cfg, logger: logger}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(Health(h.cfg)); err != nil {
		h.logger.Error("failed to write health response", "error", err)
	}
}
