// ABOUTME: Domain types for structure inference results, selection rules, and preview records
// ABOUTME: Defines the closed result contract shared by the engine, cache, and API layer

package domain

// Reserved field names in a FieldMap.
const (
	FieldItem    = "item"
	FieldPrice   = "price"
	FieldTitle   = "title"
	FieldContact = "contact"
)

// Provenance of an InferenceResult.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Confidence labels. The fallback path always asserts ConfidenceMedium;
// an oracle answer is labeled ConfidenceHigh.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Coarse data type tags reported in an InferenceResult.
const (
	DataTypePrices   = "prices"
	DataTypeEmails   = "emails"
	DataTypePhones   = "phones"
	DataTypeProducts = "products"
	DataTypeText     = "text_content"
)

// FieldMap maps semantic field names to CSS selection rules.
// The "item" key is reserved for the repeating container rule; all other
// fields are resolved relative to each container match.
type FieldMap map[string]string

// Clone returns a shallow copy so callers can amend a map without
// mutating a cached result.
func (m FieldMap) Clone() FieldMap {
	out := make(FieldMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// InferenceResult is the single structured contract returned by the engine.
// Selectors always contains a non-empty "item" rule and DataTypes is never
// empty.
type InferenceResult struct {
	Selectors  FieldMap `json:"selectors"`
	DataTypes  []string `json:"dataTypes"`
	Confidence string   `json:"confidence"`
	Source     string   `json:"source"`
}

// PreviewRecord maps non-item field names to extracted text. A record is
// only produced when at least one field is non-empty.
type PreviewRecord map[string]string

// CandidateElement is a DOM node surfaced by the feature extractor as
// plausibly containing meaningful data. Transient; never serialized.
type CandidateElement struct {
	Tag       string
	Text      string
	Classes   []string
	ID        string
	ParentTag string
}
