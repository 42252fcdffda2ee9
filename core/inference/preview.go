// ABOUTME: Preview materializer applying a resolved rule set to a document
// ABOUTME: Produces extracted records for validating inferred selectors

package inference

import (
	"strings"

	"pagesense-api/core/domain"

	"github.com/PuerkitoBio/goquery"
)

// Materialize applies selectors to the document and returns one record per
// container matched by the item rule, in document order. For each non-item
// field the first matching descendant's trimmed text is taken; absent matches
// degrade to empty strings. Records with all-empty fields are dropped. The
// materializer never fails: zero container matches yield an empty slice.
func Materialize(doc *goquery.Document, selectors domain.FieldMap) []domain.PreviewRecord {
	itemRule := strings.TrimSpace(selectors[domain.FieldItem])
	if itemRule == "" {
		itemRule = "body"
	}

	var records []domain.PreviewRecord
	safeFind(doc.Selection, itemRule).Each(func(_ int, container *goquery.Selection) {
		record := make(domain.PreviewRecord)
		keep := false

		for field, rule := range selectors {
			if field == domain.FieldItem || strings.TrimSpace(rule) == "" {
				continue
			}
			value := ""
			if match := safeFind(container, rule).First(); match.Length() > 0 {
				value = strings.TrimSpace(match.Text())
			}
			record[field] = value
			if value != "" {
				keep = true
			}
		}

		if keep {
			records = append(records, record)
		}
	})

	return records
}
