// ABOUTME: Selector synthesizer deriving minimal CSS rules from candidate elements
// ABOUTME: Prefers id over first meaningful class over bare tag name

package inference

import "pagesense-api/core/domain"

// Single-character class names are almost always utility or framework
// noise (e.g. "m", "p") and generalize poorly.
const minMeaningfulClassLen = 2

// Generic hard-coded rules used whenever no concrete candidate wins.
// They cover common naming conventions and always parse as valid CSS.
const (
	GenericItemRule    = `.product, .item, .card, [class*="item"], li, article`
	GenericPriceRule   = `.price, .cost, [class*="price"]`
	GenericTitleRule   = `.title, .name, h1, h2, h3`
	GenericContactRule = `.contact, .email, .phone, [class*="contact"], a[href^="mailto:"], a[href^="tel:"]`
)

// SynthesizeSelector derives the most specific yet generalizable rule for a
// candidate: its id, else its first class of meaningful length, else its
// tag name. Greedy and cheap; it does not verify match uniqueness.
func SynthesizeSelector(c domain.CandidateElement) string {
	if c.ID != "" {
		return "#" + c.ID
	}
	for _, class := range c.Classes {
		if len(class) >= minMeaningfulClassLen {
			return "." + class
		}
	}
	return c.Tag
}
