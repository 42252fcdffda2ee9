package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// recordingLogger captures log calls for assertions.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) log(msg string) {
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.log(msg) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.log(msg) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.log(msg) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.log(msg) }

func TestRequestLoggingMiddleware(t *testing.T) {
	logger := &recordingLogger{}
	var seenID string

	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/analyze", nil))

	if seenID == "" {
		t.Error("Handler should see a request ID in its context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seenID {
		t.Errorf("X-Request-ID header = %q, want %q", got, seenID)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("Status = %d, want 201", rec.Code)
	}

	if len(logger.messages) != 2 {
		t.Fatalf("Expected 2 log entries, got %d: %v", len(logger.messages), logger.messages)
	}
	if logger.messages[0] != "Request started" || logger.messages[1] != "Request completed" {
		t.Errorf("Log messages = %v", logger.messages)
	}
}

func TestResponseWriter_DefaultsToOK(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	if _, err := wrapped.Write([]byte("body")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if wrapped.statusCode != http.StatusOK {
		t.Errorf("Status = %d, want 200", wrapped.statusCode)
	}

	// A later WriteHeader must not override the recorded status
	wrapped.WriteHeader(http.StatusInternalServerError)
	if wrapped.statusCode != http.StatusOK {
		t.Errorf("Status after late WriteHeader = %d, want 200", wrapped.statusCode)
	}
}
