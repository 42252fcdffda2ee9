// ABOUTME: DOM feature extractor producing candidate elements for classification
// ABOUTME: Walks the parsed document in source order and keeps text-bearing nodes

package inference

import (
	"strings"

	"pagesense-api/core/domain"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// Elements with trimmed text at or below this length are layout noise.
	minCandidateTextLen = 10

	// Candidate text is bounded so huge containers stay cheap to classify.
	maxCandidateTextLen = 200
)

// Structural and non-content tags are skipped: their text is either the
// whole page or not user-visible at all.
var skippedTags = map[string]bool{
	"html":     true,
	"head":     true,
	"body":     true,
	"script":   true,
	"style":    true,
	"noscript": true,
	"meta":     true,
	"link":     true,
	"iframe":   true,
}

// ExtractCandidates walks every element node in document order and returns
// those whose trimmed text exceeds minCandidateTextLen characters. Elements
// with malformed or absent attributes simply yield zero-value fields; the
// extractor itself never fails.
func ExtractCandidates(doc *goquery.Document) []domain.CandidateElement {
	selections := candidateSelections(doc)
	candidates := make([]domain.CandidateElement, 0, len(selections))
	for _, s := range selections {
		candidates = append(candidates, elementCandidate(s))
	}
	return candidates
}

// candidateSelections is the selection-level counterpart of
// ExtractCandidates, for scans that need to refine a match into its
// descendants. Same filter, same document order.
func candidateSelections(doc *goquery.Document) []*goquery.Selection {
	var selections []*goquery.Selection
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		if skippedTags[goquery.NodeName(s)] {
			return
		}
		if len(strings.TrimSpace(s.Text())) <= minCandidateTextLen {
			return
		}
		selections = append(selections, s)
	})
	return selections
}

// elementCandidate captures the classification features of a single element.
func elementCandidate(s *goquery.Selection) domain.CandidateElement {
	text := strings.TrimSpace(s.Text())
	if len(text) > maxCandidateTextLen {
		text = text[:maxCandidateTextLen]
	}

	candidate := domain.CandidateElement{
		Tag:  goquery.NodeName(s),
		Text: text,
	}

	if class, exists := s.Attr("class"); exists {
		candidate.Classes = strings.Fields(class)
	}
	if id, exists := s.Attr("id"); exists && id != "" {
		candidate.ID = id
	}
	if parent := s.Parent(); parent.Length() > 0 {
		if node := parent.Get(0); node.Type == html.ElementNode {
			candidate.ParentTag = node.Data
		}
	}

	return candidate
}
