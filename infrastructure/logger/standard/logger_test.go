package standard

import (
	"bytes"
	"strings"
	"testing"
)

func TestStandardLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewStandardLoggerTo(&out, &errOut)

	logger.Debug("debug message", nil)
	logger.Info("info message", nil)
	logger.Warn("warn message", nil)
	logger.Error("error message", nil)

	stdout := out.String()
	for _, want := range []string{"[DEBUG] debug message", "[INFO] info message", "[WARN] warn message"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Stdout missing %q:\n%s", want, stdout)
		}
	}

	stderr := errOut.String()
	if !strings.Contains(stderr, "[ERROR] error message") {
		t.Errorf("Stderr missing error entry:\n%s", stderr)
	}
	if strings.Contains(stdout, "[ERROR]") {
		t.Error("Error entries should go to stderr only")
	}
}

func TestStandardLogger_Fields(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewStandardLoggerTo(&out, &errOut)

	logger.Info("request completed", map[string]interface{}{
		"status": 200,
	})

	if !strings.Contains(out.String(), `{"status":200}`) {
		t.Errorf("Fields not JSON-encoded: %s", out.String())
	}
}
