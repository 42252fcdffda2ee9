// ABOUTME: Analyze handlers inferring selector mappings from live or supplied HTML
// ABOUTME: Fetch failures are hard errors; inference itself never fails

package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"pagesense-api/core/domain"
	"pagesense-api/core/inference"
	"pagesense-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// AnalyzeHandler handles structure inference requests
type AnalyzeHandler struct {
	engine    *inference.Engine
	renderer  interfaces.Renderer
	cache     interfaces.Cache
	resultTTL time.Duration
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(engine *inference.Engine, renderer interfaces.Renderer, cache interfaces.Cache, resultTTL time.Duration) *AnalyzeHandler {
	return &AnalyzeHandler{
		engine:    engine,
		renderer:  renderer,
		cache:     cache,
		resultTTL: resultTTL,
	}
}

// RegisterRoutes registers analyze routes
func (h *AnalyzeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzePage",
		Method:      http.MethodPost,
		Path:        "/analyze",
		Summary:     "Infer selectors for a page",
		Description: "Fetches the page, infers a selector mapping for the described data, and previews the extraction",
		Tags:        []string{"Analysis"},
	}, h.AnalyzePage)

	huma.Register(api, huma.Operation{
		OperationID: "analyzeHTML",
		Method:      http.MethodPost,
		Path:        "/analyze/html",
		Summary:     "Infer selectors for supplied HTML",
		Description: "Infers a selector mapping for already-rendered HTML, skipping the fetch step",
		Tags:        []string{"Analysis"},
	}, h.AnalyzeHTML)
}

// AnalyzePageInput defines the input for URL-based analysis
type AnalyzePageInput struct {
	Body struct {
		URL         string `json:"url" doc:"Page URL to fetch and analyze"`
		Description string `json:"description" doc:"Free-text description of the data to extract"`
		MaxRecords  int    `json:"max_records,omitempty" doc:"Preview record cap (default 5)"`
	}
}

// AnalyzeOutput defines the output for analysis endpoints
type AnalyzeOutput struct {
	Body struct {
		Result  *domain.InferenceResult `json:"result" doc:"Inferred selectors, data types, confidence, and provenance"`
		Preview []domain.PreviewRecord  `json:"preview" doc:"Extracted records validating the selectors"`
	}
}

// AnalyzePage handles the POST /analyze endpoint
func (h *AnalyzeHandler) AnalyzePage(ctx context.Context, input *AnalyzePageInput) (*AnalyzeOutput, error) {
	if err := validatePageURL(input.Body.URL); err != nil {
		return nil, err
	}
	if input.Body.Description == "" {
		return nil, huma.Error400BadRequest("description is required")
	}

	pageHTML, err := h.renderer.RenderHTML(ctx, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return h.analyze(ctx, pageHTML, input.Body.URL, input.Body.Description, input.Body.MaxRecords)
}

// AnalyzeHTMLInput defines the input for HTML-based analysis
type AnalyzeHTMLInput struct {
	Body struct {
		HTML        string `json:"html" doc:"Rendered HTML to analyze"`
		Description string `json:"description" doc:"Free-text description of the data to extract"`
		MaxRecords  int    `json:"max_records,omitempty" doc:"Preview record cap (default 5)"`
	}
}

// AnalyzeHTML handles the POST /analyze/html endpoint
func (h *AnalyzeHandler) AnalyzeHTML(ctx context.Context, input *AnalyzeHTMLInput) (*AnalyzeOutput, error) {
	if input.Body.HTML == "" {
		return nil, huma.Error400BadRequest("html is required")
	}
	if input.Body.Description == "" {
		return nil, huma.Error400BadRequest("description is required")
	}

	return h.analyze(ctx, input.Body.HTML, "", input.Body.Description, input.Body.MaxRecords)
}

func (h *AnalyzeHandler) analyze(ctx context.Context, pageHTML, pageURL, description string, maxRecords int) (*AnalyzeOutput, error) {
	result, err := analyzeWithCache(ctx, h.engine, h.cache, h.resultTTL, pageHTML, pageURL, description)
	if err != nil {
		return nil, toHumaError(err)
	}

	records, err := h.engine.Preview(pageHTML, result.Selectors)
	if err != nil {
		return nil, toHumaError(err)
	}

	output := &AnalyzeOutput{}
	output.Body.Result = result
	output.Body.Preview = capRecords(records, maxRecords)
	return output, nil
}

// validatePageURL rejects empty and non-absolute URLs before any fetch
func validatePageURL(raw string) error {
	if raw == "" {
		return huma.Error400BadRequest("url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return huma.Error400BadRequest("url must be absolute")
	}
	return nil
}
