// ABOUTME: Scrape handler running analysis and full extraction in one call
// ABOUTME: The extraction the preview endpoint validates, without the preview cap

package handlers

import (
	"context"
	"net/http"
	"time"

	"pagesense-api/core/domain"
	"pagesense-api/core/inference"
	"pagesense-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

const defaultScrapeRecords = 50

// ScrapeHandler handles combined analyze-and-extract requests
type ScrapeHandler struct {
	engine    *inference.Engine
	renderer  interfaces.Renderer
	cache     interfaces.Cache
	resultTTL time.Duration
}

// NewScrapeHandler creates a new scrape handler
func NewScrapeHandler(engine *inference.Engine, renderer interfaces.Renderer, cache interfaces.Cache, resultTTL time.Duration) *ScrapeHandler {
	return &ScrapeHandler{
		engine:    engine,
		renderer:  renderer,
		cache:     cache,
		resultTTL: resultTTL,
	}
}

// RegisterRoutes registers scrape routes
func (h *ScrapeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "scrapePage",
		Method:      http.MethodPost,
		Path:        "/scrape",
		Summary:     "Analyze and extract in one call",
		Description: "Fetches the page, infers selectors for the described data, and returns the extracted records",
		Tags:        []string{"Extraction"},
	}, h.ScrapePage)
}

// ScrapeInput defines the input for combined extraction
type ScrapeInput struct {
	Body struct {
		URL         string `json:"url" doc:"Page URL to fetch and scrape"`
		Description string `json:"description" doc:"Free-text description of the data to extract"`
		MaxRecords  int    `json:"max_records,omitempty" doc:"Record cap (default 50)"`
	}
}

// ScrapeOutput defines the output for combined extraction
type ScrapeOutput struct {
	Body struct {
		Result  *domain.InferenceResult `json:"result" doc:"Inferred selectors used for the extraction"`
		Records []domain.PreviewRecord  `json:"records" doc:"Extracted records, in document order"`
		Count   int                     `json:"count" doc:"Number of records returned"`
	}
}

// ScrapePage handles the POST /scrape endpoint
func (h *ScrapeHandler) ScrapePage(ctx context.Context, input *ScrapeInput) (*ScrapeOutput, error) {
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

	result, err := analyzeWithCache(ctx, h.engine, h.cache, h.resultTTL, pageHTML, input.Body.URL, input.Body.Description)
	if err != nil {
		return nil, toHumaError(err)
	}

	records, err := h.engine.Preview(pageHTML, result.Selectors)
	if err != nil {
		return nil, toHumaError(err)
	}

	max := input.Body.MaxRecords
	if max <= 0 {
		max = defaultScrapeRecords
	}
	if len(records) > max {
		records = records[:max]
	}

	output := &ScrapeOutput{}
	output.Body.Result = result
	output.Body.Records = records
	output.Body.Count = len(records)
	return output, nil
}
