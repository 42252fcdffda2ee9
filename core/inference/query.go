// ABOUTME: Safe CSS rule evaluation helpers over goquery selections
// ABOUTME: Unparseable rules match nothing instead of panicking

package inference

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// matchNothing is the degenerate matcher used for rules that fail to parse.
var matchNothing = cascadia.Selector(func(*html.Node) bool { return false })

// safeFind evaluates a CSS rule against a selection. Oracle-supplied rules
// are untrusted, so a rule that cascadia rejects resolves to zero elements
// rather than panicking the way Selection.Find would.
func safeFind(s *goquery.Selection, rule string) *goquery.Selection {
	matcher, err := cascadia.Compile(rule)
	if err != nil {
		return s.FindMatcher(matchNothing)
	}
	return s.FindMatcher(matcher)
}
