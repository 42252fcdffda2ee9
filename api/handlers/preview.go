// ABOUTME: Preview handler applying a caller-supplied selector mapping to a page
// ABOUTME: Used to validate inferred rules before a full extraction run

package handlers

import (
	"context"
	"net/http"

	"pagesense-api/core/domain"
	"pagesense-api/core/inference"
	"pagesense-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// PreviewHandler handles selector preview requests
type PreviewHandler struct {
	engine   *inference.Engine
	renderer interfaces.Renderer
}

// NewPreviewHandler creates a new preview handler
func NewPreviewHandler(engine *inference.Engine, renderer interfaces.Renderer) *PreviewHandler {
	return &PreviewHandler{
		engine:   engine,
		renderer: renderer,
	}
}

// RegisterRoutes registers preview routes
func (h *PreviewHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "previewSelectors",
		Method:      http.MethodPost,
		Path:        "/preview",
		Summary:     "Preview extraction for a selector mapping",
		Description: "Applies the supplied selector mapping to a page and returns the extracted records",
		Tags:        []string{"Analysis"},
	}, h.PreviewSelectors)
}

// PreviewInput defines the input for selector preview. Exactly one of url
// and html must be provided.
type PreviewInput struct {
	Body struct {
		URL        string          `json:"url,omitempty" doc:"Page URL to fetch"`
		HTML       string          `json:"html,omitempty" doc:"Rendered HTML (alternative to url)"`
		Selectors  domain.FieldMap `json:"selectors" doc:"Field-to-selector mapping; 'item' is the container rule"`
		MaxRecords int             `json:"max_records,omitempty" doc:"Record cap (default 5)"`
	}
}

// PreviewOutput defines the output for selector preview
type PreviewOutput struct {
	Body struct {
		Records []domain.PreviewRecord `json:"records" doc:"Extracted records, in document order"`
		Count   int                    `json:"count" doc:"Number of records returned"`
	}
}

// PreviewSelectors handles the POST /preview endpoint
func (h *PreviewHandler) PreviewSelectors(ctx context.Context, input *PreviewInput) (*PreviewOutput, error) {
	if len(input.Body.Selectors) == 0 {
		return nil, huma.Error400BadRequest("selectors are required")
	}
	if (input.Body.URL == "") == (input.Body.HTML == "") {
		return nil, huma.Error400BadRequest("exactly one of url or html is required")
	}

	pageHTML := input.Body.HTML
	if input.Body.URL != "" {
		if err := validatePageURL(input.Body.URL); err != nil {
			return nil, err
		}
		rendered, err := h.renderer.RenderHTML(ctx, input.Body.URL)
		if err != nil {
			return nil, toHumaError(err)
		}
		pageHTML = rendered
	}

	records, err := h.engine.Preview(pageHTML, input.Body.Selectors)
	if err != nil {
		return nil, toHumaError(err)
	}
	records = capRecords(records, input.Body.MaxRecords)

	output := &PreviewOutput{}
	output.Body.Records = records
	output.Body.Count = len(records)
	return output, nil
}
