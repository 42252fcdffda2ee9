// ABOUTME: Stateless pattern classifiers for price, contact, and heading detection
// ABOUTME: Pure lexical predicates over element text and the user's prompt

package inference

import (
	"regexp"
	"strings"
)

// Entity span patterns. These stand in for a full entity tagger: the shapes
// below cover the monetary, email, and phone spans the classifier cares about.
var (
	moneySpanPattern = regexp.MustCompile(`(?i)\d+(?:[.,]\d{2})\s*(?:usd|eur|gbp|dollars?|euros?)\b`)
	emailSpanPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneSpanPattern = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
)

// Prompt keyword sets gating each semantic field. Matching is a substring
// check against the lowercased prompt.
var (
	priceKeywords   = []string{"price", "cost", "$", "how much"}
	titleKeywords   = []string{"title", "name", "product", "heading", "item"}
	contactKeywords = []string{"contact", "email", "phone", "tel"}
)

// LooksLikeMoney reports whether text reads like a price: a currency symbol,
// the USD token, a price/cost mention, or a monetary entity span.
func LooksLikeMoney(text string) bool {
	if strings.ContainsAny(text, "$€£") {
		return true
	}
	if strings.Contains(text, "USD") {
		return true
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "price") || strings.Contains(lower, "cost") {
		return true
	}
	return moneySpanPattern.MatchString(text)
}

// ContainsEmail reports whether text contains an email-shaped span.
func ContainsEmail(text string) bool {
	return emailSpanPattern.MatchString(text)
}

// ContainsPhone reports whether text contains a phone-number-shaped span.
func ContainsPhone(text string) bool {
	return phoneSpanPattern.MatchString(text)
}

// IsProductHeading reports whether tag is a heading level commonly used for
// product or item names.
func IsProductHeading(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4":
		return true
	}
	return false
}

// PromptWantsPrice reports whether the user's prompt hints at price data.
func PromptWantsPrice(prompt string) bool {
	return promptMatches(prompt, priceKeywords)
}

// PromptWantsTitle reports whether the user's prompt hints at titles or
// product names.
func PromptWantsTitle(prompt string) bool {
	return promptMatches(prompt, titleKeywords)
}

// PromptWantsContact reports whether the user's prompt hints at contact data.
// Classification is partly prompt-driven: the same page yields different
// selectors depending on what the user asked for.
func PromptWantsContact(prompt string) bool {
	return promptMatches(prompt, contactKeywords)
}

func promptMatches(prompt string, keywords []string) bool {
	lower := strings.ToLower(prompt)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
