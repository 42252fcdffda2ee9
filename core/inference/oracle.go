// ABOUTME: Inference oracle adapter querying an external chat-completion service
// ABOUTME: One shot per call; every transport or parse failure degrades to no answer

package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"pagesense-api/core/domain"
	"pagesense-api/core/interfaces"
)

const (
	defaultOracleTimeout = 30 * time.Second
	defaultOracleModel   = "gpt-4o-mini"
	completionsPath      = "/v1/chat/completions"

	// Page text sent to the oracle is truncated to keep the request small.
	maxPageTextLen = 1500

	// Oracle responses larger than this are not worth reading.
	maxOracleBodyLen = 1 << 20
)

// jsonSpanPattern locates the first balanced-looking JSON object embedded in
// the oracle's free-text answer. Greedy: from the first '{' to the last '}'.
var jsonSpanPattern = regexp.MustCompile(`(?s)\{.*\}`)

// OracleConfig holds the static configuration for the external inference
// service, constructed once at process start.
type OracleConfig struct {
	Token   string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OracleAdapter issues a single bounded request to the inference service and
// converts its free-text answer into a field map. It never returns an error:
// unavailability, timeouts, non-success statuses, and unparseable bodies all
// yield a nil map, logged but not raised.
type OracleAdapter struct {
	cfg  OracleConfig
	deps interfaces.Dependencies
}

// NewOracleAdapter creates a new oracle adapter with defaults applied
func NewOracleAdapter(cfg OracleConfig, deps interfaces.Dependencies) *OracleAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultOracleTimeout
	}
	if cfg.Model == "" {
		cfg.Model = defaultOracleModel
	}
	return &OracleAdapter{cfg: cfg, deps: deps}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Suggest asks the oracle for a selector mapping. Returns nil when the
// oracle cannot answer; the caller absorbs unavailability by falling back.
// No retries: one shot per call.
func (o *OracleAdapter) Suggest(ctx context.Context, pageText, userPrompt string) domain.FieldMap {
	if len(pageText) > maxPageTextLen {
		pageText = pageText[:maxPageTextLen]
	}

	payload, err := json.Marshal(chatRequest{
		Model: o.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: oracleSystemPrompt},
			{Role: "user", Content: buildOraclePrompt(pageText, userPrompt)},
		},
		Temperature: 0,
	})
	if err != nil {
		o.logDebug("Failed to encode oracle request", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	headers := map[string]string{
		"Authorization": "Bearer " + o.cfg.Token,
	}
	url := strings.TrimRight(o.cfg.BaseURL, "/") + completionsPath

	resp, err := o.deps.HTTPClient.Post(ctx, url, headers, bytes.NewReader(payload))
	if err != nil {
		o.logDebug("Oracle request failed", err)
		return nil
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		o.logDebug("Oracle returned non-success status", fmt.Errorf("status %d", resp.StatusCode()))
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxOracleBodyLen))
	if err != nil {
		o.logDebug("Failed to read oracle response", err)
		return nil
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil || len(chat.Choices) == 0 {
		o.logDebug("Oracle response had no usable choices", err)
		return nil
	}

	fields := parseFieldMap(chat.Choices[0].Message.Content)
	if fields == nil {
		o.logDebug("Oracle answer contained no valid selector object", nil)
	}
	return fields
}

const oracleSystemPrompt = "You analyze web page content and respond with a single JSON object " +
	"mapping semantic field names to CSS selectors. Use the key \"item\" for the repeating " +
	"container selector. Respond with JSON only, no prose."

func buildOraclePrompt(pageText, userPrompt string) string {
	return fmt.Sprintf(
		"The user wants to extract: %s\n\nPage content (truncated):\n%s\n\n"+
			"Return a JSON object of field names to CSS selectors.",
		userPrompt, pageText,
	)
}

// parseFieldMap extracts the embedded JSON object and decodes it into a
// field map. Both a flat {"field": "rule"} object and a wrapped
// {"selectors": {...}} object are accepted; anything else, or a map with no
// non-empty selector, is no answer.
func parseFieldMap(content string) domain.FieldMap {
	span := jsonSpanPattern.FindString(content)
	if span == "" {
		return nil
	}

	var flat map[string]string
	if err := json.Unmarshal([]byte(span), &flat); err == nil {
		return sanitizeFieldMap(flat)
	}

	var wrapped struct {
		Selectors map[string]string `json:"selectors"`
	}
	if err := json.Unmarshal([]byte(span), &wrapped); err == nil {
		return sanitizeFieldMap(wrapped.Selectors)
	}

	return nil
}

// sanitizeFieldMap drops empty keys and rules; an empty result is no answer.
func sanitizeFieldMap(raw map[string]string) domain.FieldMap {
	fields := make(domain.FieldMap, len(raw))
	for name, rule := range raw {
		name = strings.TrimSpace(name)
		rule = strings.TrimSpace(rule)
		if name == "" || rule == "" {
			continue
		}
		fields[name] = rule
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func (o *OracleAdapter) logDebug(msg string, err error) {
	if o.deps.Logger == nil {
		return
	}
	fields := map[string]interface{}{}
	if err != nil {
		fields["error"] = err.Error()
	}
	o.deps.Logger.Debug(msg, fields)
}
