package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %q, want %q", cfg.Server.Port, "8000")
	}
	if cfg.Server.RateLimit != 100 {
		t.Errorf("RateLimit = %d, want 100", cfg.Server.RateLimit)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("Cache type = %q, want %q", cfg.Cache.Type, "memory")
	}
	if cfg.Cache.ResultTTL != 3600 {
		t.Errorf("ResultTTL = %d, want 3600", cfg.Cache.ResultTTL)
	}
	if cfg.Oracle.Enabled() {
		t.Error("Oracle should be disabled without a token")
	}
	if cfg.Renderer.Mode != RendererStatic {
		t.Errorf("Renderer mode = %q, want %q", cfg.Renderer.Mode, RendererStatic)
	}
	if cfg.Logging.Backend != "standard" {
		t.Errorf("Log backend = %q, want %q", cfg.Logging.Backend, "standard")
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("ORACLE_API_TOKEN", "secret")
	t.Setenv("ORACLE_TIMEOUT", "5")
	t.Setenv("RENDERER_MODE", "headless")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Server.Port, "9090")
	}
	if cfg.Cache.Type != "redis" {
		t.Errorf("Cache type = %q, want %q", cfg.Cache.Type, "redis")
	}
	if !cfg.Oracle.Enabled() {
		t.Error("Oracle should be enabled with a token")
	}
	if cfg.Oracle.Timeout() != 5*time.Second {
		t.Errorf("Oracle timeout = %v, want 5s", cfg.Oracle.Timeout())
	}
	if cfg.Renderer.Mode != RendererHeadless {
		t.Errorf("Renderer mode = %q, want %q", cfg.Renderer.Mode, RendererHeadless)
	}
}

func TestLoadFromEnv_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if cfg.Server.RateLimit != 100 {
		t.Errorf("RateLimit = %d, want default 100", cfg.Server.RateLimit)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, _ := LoadFromEnv()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Server.Port = "" }, true},
		{"unknown cache type", func(c *Config) { c.Cache.Type = "memcached" }, true},
		{"redis without address", func(c *Config) {
			c.Cache.Type = "redis"
			c.Cache.Redis.Address = ""
		}, true},
		{"oracle token without base URL", func(c *Config) {
			c.Oracle.Token = "secret"
			c.Oracle.BaseURL = ""
		}, true},
		{"zero oracle timeout", func(c *Config) { c.Oracle.TimeoutSeconds = 0 }, true},
		{"unknown renderer mode", func(c *Config) { c.Renderer.Mode = "screenshot" }, true},
		{"zero navigation timeout", func(c *Config) { c.Renderer.NavTimeoutSeconds = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}
