// ABOUTME: Structure inference engine orchestrating the oracle and the fallback classifier
// ABOUTME: Always yields one structurally complete result with a known provenance tag

package inference

import (
	"context"
	"net/url"
	"strings"

	"pagesense-api/core/domain"
	coreerrors "pagesense-api/core/errors"
	"pagesense-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Engine infers selection rules for a rendered page. It tries the oracle
// first and delegates to the deterministic fallback classifier when the
// oracle has no answer. Once a document has been parsed the engine never
// fails; only an unparseable input stream is an error.
type Engine struct {
	deps     interfaces.Dependencies
	oracle   *OracleAdapter
	fallback *FallbackClassifier
}

// NewEngine creates an inference engine. A nil oracle disables the oracle
// path entirely; every analysis then uses the fallback classifier.
func NewEngine(deps interfaces.Dependencies, oracle *OracleAdapter) *Engine {
	return &Engine{
		deps:     deps,
		oracle:   oracle,
		fallback: NewFallbackClassifier(deps.Logger),
	}
}

// Analyze parses the rendered HTML and infers a selector mapping for the
// user's prompt. The result always carries a non-empty item rule, a
// non-empty data type inventory, and a provenance tag.
func (e *Engine) Analyze(ctx context.Context, pageHTML, userPrompt string) (*domain.InferenceResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse document")
	}

	if e.oracle != nil {
		if fields := e.oracle.Suggest(ctx, e.pageText(pageHTML, doc), userPrompt); len(fields) > 0 {
			selectors := fields.Clone()
			if strings.TrimSpace(selectors[domain.FieldItem]) == "" {
				selectors[domain.FieldItem] = itemRule(doc)
			}
			if e.deps.Logger != nil {
				e.deps.Logger.Info("Oracle provided selectors", map[string]interface{}{
					"fields": len(selectors),
				})
			}
			return &domain.InferenceResult{
				Selectors:  selectors,
				DataTypes:  e.fallback.DataTypes(doc, userPrompt),
				Confidence: domain.ConfidenceHigh,
				Source:     domain.SourceAI,
			}, nil
		}
		if e.deps.Logger != nil {
			e.deps.Logger.Info("Oracle unavailable or unparseable, using fallback classifier", nil)
		}
	}

	return e.fallback.Classify(doc, userPrompt), nil
}

// Preview applies a resolved selector mapping to the rendered HTML and
// returns the extracted records, in document order of the item matches.
func (e *Engine) Preview(pageHTML string, selectors domain.FieldMap) ([]domain.PreviewRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse document")
	}
	return Materialize(doc, selectors), nil
}

// DataTypes reports the coarse data type inventory for a page and prompt.
func (e *Engine) DataTypes(pageHTML, userPrompt string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse document")
	}
	return e.fallback.DataTypes(doc, userPrompt), nil
}

// readabilityURL anchors relative links during article extraction; the page
// itself is never fetched from it.
var readabilityURL = &url.URL{Scheme: "https", Host: "localhost"}

// pageText extracts the page's readable body text for the oracle prompt.
// Readability gives cleaner article text; short or failed extractions fall
// back to the raw body text. Whitespace is collapsed and the result is
// bounded by the oracle's truncation.
func (e *Engine) pageText(pageHTML string, doc *goquery.Document) string {
	if article, err := readability.FromReader(strings.NewReader(pageHTML), readabilityURL); err == nil {
		if text := strings.Join(strings.Fields(article.TextContent), " "); len(text) > minCandidateTextLen {
			return text
		}
	}
	return strings.Join(strings.Fields(doc.Find("body").Text()), " ")
}
