// ABOUTME: Static page renderer built on colly for server-rendered sites
// ABOUTME: Fetches raw HTML without executing JavaScript

package static

import (
	"context"
	"errors"
	"time"

	coreerrors "pagesense-api/core/errors"
	"pagesense-api/core/interfaces"

	"github.com/gocolly/colly"
)

const (
	rendererUserAgent = "PageSenseAPI/1.0"
	maxBodySize       = 5 * 1024 * 1024
)

// Renderer implements the Renderer interface with a plain HTTP fetch.
// Suitable for server-rendered pages; JS-heavy sites need the headless
// renderer instead.
type Renderer struct {
	timeout time.Duration
	logger  interfaces.Logger
}

// NewRenderer creates a static renderer with the given navigation timeout
func NewRenderer(timeout time.Duration, logger interfaces.Logger) *Renderer {
	return &Renderer{
		timeout: timeout,
		logger:  logger,
	}
}

// RenderHTML fetches the page and returns its HTML. Navigation failures are
// returned as FetchError; they are fatal to the caller's request.
func (r *Renderer) RenderHTML(ctx context.Context, targetURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &coreerrors.FetchError{URL: targetURL, Err: err}
	}
	if targetURL == "" {
		return "", &coreerrors.FetchError{URL: targetURL, Err: errors.New("empty url")}
	}

	c := colly.NewCollector(
		colly.UserAgent(rendererUserAgent),
		colly.MaxBodySize(maxBodySize),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(r.timeout)

	var pageHTML []byte
	c.OnResponse(func(resp *colly.Response) {
		pageHTML = resp.Body
	})

	if err := c.Visit(targetURL); err != nil {
		if r.logger != nil {
			r.logger.Debug("Static render failed", map[string]interface{}{
				"url":   targetURL,
				"error": err.Error(),
			})
		}
		return "", &coreerrors.FetchError{URL: targetURL, Err: err}
	}

	if len(pageHTML) == 0 {
		return "", &coreerrors.FetchError{URL: targetURL, Err: errors.New("empty response body")}
	}

	return string(pageHTML), nil
}
