// Package core contains the business logic for the PageSense API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (InferenceResult, FieldMap, PreviewRecord)
// - inference: The content structure inference engine and its parts
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, renderer)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - The engine never fails once it holds a parsed document
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	oracle := inference.NewOracleAdapter(inference.OracleConfig{
//	    Token:   token,
//	    BaseURL: "https://api.openai.com",
//	}, deps)
//
//	engine := inference.NewEngine(deps, oracle)
//	result, err := engine.Analyze(ctx, pageHTML, "get me the price and title")
package core
