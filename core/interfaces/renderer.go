// ABOUTME: Renderer interface for obtaining fully rendered HTML documents
// ABOUTME: Implementations may fetch statically or drive a headless browser

package interfaces

import "context"

// Renderer fetches the rendered HTML of a page. It is the only collaborator
// whose failure is fatal to an analysis request: no page means no analysis.
type Renderer interface {
	// RenderHTML navigates to the URL and returns the page HTML.
	// A navigation or timeout failure is returned as an error, not absorbed.
	RenderHTML(ctx context.Context, url string) (string, error)
}
