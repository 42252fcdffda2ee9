package inference

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"pagesense-api/core/interfaces"
)

// mockResponse implements interfaces.Response for oracle tests.
type mockResponse struct {
	status int
	body   string
}

func (m *mockResponse) StatusCode() int          { return m.status }
func (m *mockResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

// mockHTTPClient implements interfaces.HTTPClient with a scripted POST.
type mockHTTPClient struct {
	postFunc func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return nil, errors.New("not implemented")
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
	return m.postFunc(ctx, url, headers, body)
}

func chatBody(content string) string {
	encoded, _ := json.Marshal(content)
	return `{"choices":[{"message":{"content":` + string(encoded) + `}}]}`
}

func newTestOracle(client interfaces.HTTPClient) *OracleAdapter {
	return NewOracleAdapter(OracleConfig{
		Token:   "test-token",
		BaseURL: "http://oracle.local",
	}, interfaces.Dependencies{HTTPClient: client})
}

func TestSuggest_ParsesFlatSelectorObject(t *testing.T) {
	var gotURL string
	var gotAuth string
	client := &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
			gotURL = url
			gotAuth = headers["Authorization"]
			return &mockResponse{
				status: 200,
				body:   chatBody(`Here you go: {"item": ".product", "price": ".price"}`),
			}, nil
		},
	}

	fields := newTestOracle(client).Suggest(context.Background(), "some page text", "get prices")

	if gotURL != "http://oracle.local/v1/chat/completions" {
		t.Errorf("Request URL = %q, want the completions endpoint", gotURL)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization header = %q, want bearer token", gotAuth)
	}
	if fields == nil {
		t.Fatal("Expected a field map, got nil")
	}
	if fields["item"] != ".product" || fields["price"] != ".price" {
		t.Errorf("Fields = %v, want item/.product and price/.price", fields)
	}
}

func TestSuggest_ParsesWrappedSelectorObject(t *testing.T) {
	client := &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
			return &mockResponse{
				status: 200,
				body:   chatBody(`{"selectors": {"title": "h2"}}`),
			}, nil
		},
	}

	fields := newTestOracle(client).Suggest(context.Background(), "text", "titles")

	if fields == nil || fields["title"] != "h2" {
		t.Errorf("Fields = %v, want title/h2", fields)
	}
}

func TestSuggest_NoAnswerCases(t *testing.T) {
	tests := []struct {
		name   string
		client *mockHTTPClient
	}{
		{
			name: "transport error",
			client: &mockHTTPClient{
				postFunc: func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
					return nil, errors.New("connection refused")
				},
			},
		},
		{
			name: "non-success status",
			client: &mockHTTPClient{
				postFunc: func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
					return &mockResponse{status: 503, body: "overloaded"}, nil
				},
			},
		},
		{
			name: "no choices",
			client: &mockHTTPClient{
				postFunc: func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
					return &mockResponse{status: 200, body: `{"choices":[]}`}, nil
				},
			},
		},
		{
			name: "answer without JSON",
			client: &mockHTTPClient{
				postFunc: func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
					return &mockResponse{status: 200, body: chatBody("I cannot determine the selectors.")}, nil
				},
			},
		},
		{
			name: "answer with empty selector object",
			client: &mockHTTPClient{
				postFunc: func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
					return &mockResponse{status: 200, body: chatBody(`{"price": "", "": ".x"}`)}, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if fields := newTestOracle(tt.client).Suggest(context.Background(), "text", "prompt"); fields != nil {
				t.Errorf("Expected nil field map, got %v", fields)
			}
		})
	}
}

func TestParseFieldMap_InvalidJSONSpan(t *testing.T) {
	if fields := parseFieldMap("result: {not valid json}"); fields != nil {
		t.Errorf("Expected nil for an invalid JSON span, got %v", fields)
	}
}

func TestSuggest_TruncatesPageText(t *testing.T) {
	var sentBody []byte
	client := &mockHTTPClient{
		postFunc: func(ctx context.Context, url string, headers map[string]string, body io.Reader) (interfaces.Response, error) {
			sentBody, _ = io.ReadAll(body)
			return &mockResponse{status: 200, body: chatBody(`{"item": "li"}`)}, nil
		},
	}

	longText := strings.Repeat("x", maxPageTextLen*2)
	newTestOracle(client).Suggest(context.Background(), longText, "items")

	var req chatRequest
	if err := json.Unmarshal(sentBody, &req); err != nil {
		t.Fatalf("Failed to decode request body: %v", err)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(req.Messages))
	}
	if strings.Contains(req.Messages[1].Content, longText) {
		t.Error("Page text was not truncated before sending")
	}
	if req.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", req.Temperature)
	}
}
