// ABOUTME: Deterministic fallback classifier used when the inference oracle cannot answer
// ABOUTME: Combines DOM features, pattern classifiers, and selector synthesis into a field map

package inference

import (
	"strings"

	"pagesense-api/core/domain"
	"pagesense-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

const headingRule = "h1, h2, h3, h4"

// FallbackClassifier produces an explainable field map from lexical and
// structural cues alone. It never fails: internal errors are absorbed and
// degrade to the generic rules.
type FallbackClassifier struct {
	logger interfaces.Logger
}

// NewFallbackClassifier creates a new fallback classifier
func NewFallbackClassifier(logger interfaces.Logger) *FallbackClassifier {
	return &FallbackClassifier{logger: logger}
}

// pageSignals holds the page-wide pattern gates, computed once per call.
type pageSignals struct {
	hasMoney    bool
	hasEmail    bool
	hasPhone    bool
	hasHeadings bool
}

func (c *FallbackClassifier) signals(doc *goquery.Document) pageSignals {
	bodyText := doc.Find("body").Text()
	return pageSignals{
		hasMoney:    LooksLikeMoney(bodyText),
		hasEmail:    ContainsEmail(bodyText),
		hasPhone:    ContainsPhone(bodyText),
		hasHeadings: doc.Find(headingRule).Length() > 0,
	}
}

// Classify runs the heuristic pipeline and always returns a structurally
// complete result with source "fallback" and confidence "medium". A field is
// populated when the prompt hints at it OR the page content shows matching
// spans; the prompt gate alone is sufficient. Ties break on document order:
// the first matching candidate wins, always.
func (c *FallbackClassifier) Classify(doc *goquery.Document, prompt string) (result *domain.InferenceResult) {
	defer func() {
		if r := recover(); r != nil {
			if c.logger != nil {
				c.logger.Warn("Fallback classification recovered, using generic rules", map[string]interface{}{
					"panic": r,
				})
			}
			result = &domain.InferenceResult{
				Selectors:  domain.FieldMap{domain.FieldItem: GenericItemRule},
				DataTypes:  []string{domain.DataTypeText},
				Confidence: domain.ConfidenceMedium,
				Source:     domain.SourceFallback,
			}
		}
	}()

	selections := candidateSelections(doc)
	sig := c.signals(doc)

	selectors := domain.FieldMap{
		domain.FieldItem: itemRule(doc),
	}

	if PromptWantsPrice(prompt) || sig.hasMoney {
		selectors[domain.FieldPrice] = scanRule(selections, LooksLikeMoney, GenericPriceRule)
	}
	if PromptWantsTitle(prompt) || sig.hasHeadings {
		selectors[domain.FieldTitle] = titleRule(doc, selections)
	}
	if PromptWantsContact(prompt) || sig.hasEmail || sig.hasPhone {
		selectors[domain.FieldContact] = scanRule(selections, looksLikeContact, GenericContactRule)
	}

	return &domain.InferenceResult{
		Selectors:  selectors,
		DataTypes:  c.dataTypes(prompt, sig),
		Confidence: domain.ConfidenceMedium,
		Source:     domain.SourceFallback,
	}
}

// DataTypes reports the coarse data type inventory for a document and prompt,
// using the same gates as Classify. Never empty.
func (c *FallbackClassifier) DataTypes(doc *goquery.Document, prompt string) []string {
	return c.dataTypes(prompt, c.signals(doc))
}

func (c *FallbackClassifier) dataTypes(prompt string, sig pageSignals) []string {
	lower := strings.ToLower(prompt)

	var types []string
	if PromptWantsPrice(prompt) || sig.hasMoney {
		types = append(types, domain.DataTypePrices)
	}
	if strings.Contains(lower, "email") || strings.Contains(lower, "contact") || sig.hasEmail {
		types = append(types, domain.DataTypeEmails)
	}
	if strings.Contains(lower, "phone") || strings.Contains(lower, "tel") || sig.hasPhone {
		types = append(types, domain.DataTypePhones)
	}
	if PromptWantsTitle(prompt) || sig.hasHeadings {
		types = append(types, domain.DataTypeProducts)
	}
	if len(types) == 0 {
		types = append(types, domain.DataTypeText)
	}
	return types
}

// itemRule returns the fixed generic container rule, degrading to "body"
// on pages where none of the common repeating-item conventions appear, so
// preview materialization still has a container to work with.
func itemRule(doc *goquery.Document) string {
	if safeFind(doc.Selection, GenericItemRule).Length() > 0 {
		return GenericItemRule
	}
	return "body"
}

func looksLikeContact(text string) bool {
	return ContainsEmail(text) || ContainsPhone(text)
}

// scanRule returns the synthesized selector of the first candidate in
// document order whose text satisfies the predicate, refined to the deepest
// descendant that still satisfies it. Falls back to the generic rule.
func scanRule(selections []*goquery.Selection, pred func(string) bool, generic string) string {
	for _, s := range selections {
		if pred(elementCandidate(s).Text) {
			return SynthesizeSelector(elementCandidate(refineMatch(s, pred)))
		}
	}
	return generic
}

// refineMatch descends into the first child whose text still satisfies the
// predicate, returning the most specific matching element. A parent wrapping
// a dedicated price or contact node would otherwise shadow it.
func refineMatch(s *goquery.Selection, pred func(string) bool) *goquery.Selection {
	for {
		var next *goquery.Selection
		s.Children().EachWithBreak(func(_ int, child *goquery.Selection) bool {
			if pred(strings.TrimSpace(child.Text())) {
				next = child
				return false
			}
			return true
		})
		if next == nil {
			return s
		}
		s = next
	}
}

// titleRule prefers the first heading among the candidates, then the first
// non-empty heading anywhere in the document, then the generic rule.
func titleRule(doc *goquery.Document, selections []*goquery.Selection) string {
	for _, s := range selections {
		if IsProductHeading(goquery.NodeName(s)) {
			return SynthesizeSelector(elementCandidate(s))
		}
	}

	rule := GenericTitleRule
	doc.Find(headingRule).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) == "" {
			return true
		}
		rule = SynthesizeSelector(elementCandidate(s))
		return false
	})
	return rule
}
