// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, page rendering, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: Persistent file-based cache
// - http/standard: Standard library HTTP client with retry logic on GET
// - logger/standard: Simple structured logger on the standard library
// - logger/logrus: JSON structured logger on logrus
// - render/static: Static page fetcher built on colly
// - render/headless: Headless-browser renderer built on chromedp
//
// Infrastructure components are designed to be pluggable, configurable,
// and testable; the bootstrap layer selects implementations from config.
package infrastructure
