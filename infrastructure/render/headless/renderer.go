// ABOUTME: Headless-browser renderer built on chromedp
// ABOUTME: Returns post-JavaScript HTML for single-page applications

package headless

import (
	"context"
	"time"

	coreerrors "pagesense-api/core/errors"
	"pagesense-api/core/interfaces"

	"github.com/chromedp/chromedp"
)

// Renderer implements the Renderer interface by driving a headless Chrome
// instance. Each render uses a fresh browser context so page state never
// leaks between requests.
type Renderer struct {
	timeout time.Duration
	logger  interfaces.Logger
}

// NewRenderer creates a headless renderer with the given navigation timeout
func NewRenderer(timeout time.Duration, logger interfaces.Logger) *Renderer {
	return &Renderer{
		timeout: timeout,
		logger:  logger,
	}
}

// RenderHTML navigates to the URL, waits for the body to be ready, and
// returns the rendered document. Navigation or timeout failures are returned
// as FetchError.
func (r *Renderer) RenderHTML(ctx context.Context, targetURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pageHTML string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &pageHTML),
	)
	if err != nil {
		if r.logger != nil {
			r.logger.Debug("Headless render failed", map[string]interface{}{
				"url":   targetURL,
				"error": err.Error(),
			})
		}
		return "", &coreerrors.FetchError{URL: targetURL, Err: err}
	}

	return pageHTML, nil
}
