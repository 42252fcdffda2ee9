// ABOUTME: Shared helpers for analysis handlers
// ABOUTME: Result caching keyed by page URL and prompt

package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"pagesense-api/core/domain"
	"pagesense-api/core/inference"
	"pagesense-api/core/interfaces"
)

const defaultPreviewRecords = 5

// analysisCacheKey derives a stable cache key from the page URL and prompt.
func analysisCacheKey(pageURL, prompt string) string {
	sum := sha256.Sum256([]byte(pageURL + "\x00" + prompt))
	return "analyze:" + hex.EncodeToString(sum[:])
}

// analyzeWithCache runs the engine, consulting the cache first when a page
// URL provides a stable key. Cache failures are ignored; analysis always
// proceeds.
func analyzeWithCache(
	ctx context.Context,
	engine *inference.Engine,
	cache interfaces.Cache,
	ttl time.Duration,
	pageHTML, pageURL, prompt string,
) (*domain.InferenceResult, error) {
	key := ""
	if cache != nil && pageURL != "" {
		key = analysisCacheKey(pageURL, prompt)
		if data, err := cache.Get(ctx, key); err == nil && data != nil {
			var cached domain.InferenceResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	result, err := engine.Analyze(ctx, pageHTML, prompt)
	if err != nil {
		return nil, err
	}

	if key != "" {
		if data, err := json.Marshal(result); err == nil {
			_ = cache.Set(ctx, key, data, ttl)
		}
	}

	return result, nil
}

// capRecords bounds the record list; max <= 0 applies the default preview cap.
func capRecords(records []domain.PreviewRecord, max int) []domain.PreviewRecord {
	if max <= 0 {
		max = defaultPreviewRecords
	}
	if len(records) > max {
		return records[:max]
	}
	return records
}
