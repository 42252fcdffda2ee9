// ABOUTME: Health handler reporting liveness and active configuration
// ABOUTME: Never exposes credentials

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler reports service health
type HealthHandler struct {
	oracleEnabled bool
	rendererMode  string
	cacheType     string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(oracleEnabled bool, rendererMode, cacheType string) *HealthHandler {
	return &HealthHandler{
		oracleEnabled: oracleEnabled,
		rendererMode:  rendererMode,
		cacheType:     cacheType,
	}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Service health",
		Tags:        []string{"Health"},
	}, h.Healthz)
}

// HealthOutput defines the health response
type HealthOutput struct {
	Body struct {
		Status        string `json:"status"`
		OracleEnabled bool   `json:"oracle_enabled"`
		RendererMode  string `json:"renderer_mode"`
		CacheType     string `json:"cache_type"`
	}
}

// Healthz handles the GET /healthz endpoint
func (h *HealthHandler) Healthz(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	output := &HealthOutput{}
	output.Body.Status = "ok"
	output.Body.OracleEnabled = h.oracleEnabled
	output.Body.RendererMode = h.rendererMode
	output.Body.CacheType = h.cacheType
	return output, nil
}
