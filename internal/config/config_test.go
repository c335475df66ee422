package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(*testing.T, *Config)
	}{
		{
			name: "default values",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != "8080" {
					t.Errorf("expected port 8080, got %s", cfg.Port)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("expected log level info, got %s", cfg.LogLevel)
				}
				if cfg.QueryAPIURL != "http://localhost:9000/query" {
					t.Errorf("expected default query API URL, got %s", cfg.QueryAPIURL)
				}
				if cfg.QueryTimeout != 90*time.Second {
					t.Errorf("expected QueryTimeout 90s, got %v", cfg.QueryTimeout)
				}
				if cfg.QueryMaxWait != 60 {
					t.Errorf("expected QueryMaxWait 60, got %d", cfg.QueryMaxWait)
				}
			},
		},
		{
			name: "custom values",
			env: map[string]string{
				"PORT":            "9000",
				"LOG_LEVEL":       "debug",
				"QUERY_API_URL":   "https://analytics.example.com/query",
				"QUERY_TIMEOUT":   "30",
				"QUERY_MAX_WAIT":  "120",
				"ALLOWED_ORIGINS": "http://example.com,http://test.com",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != "9000" {
					t.Errorf("expected port 9000, got %s", cfg.Port)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("expected log level debug, got %s", cfg.LogLevel)
				}
				if cfg.QueryAPIURL != "https://analytics.example.com/query" {
					t.Errorf("expected custom query API URL, got %s", cfg.QueryAPIURL)
				}
				if cfg.QueryTimeout != 30*time.Second {
					t.Errorf("expected QueryTimeout 30s, got %v", cfg.QueryTimeout)
				}
				if cfg.QueryMaxWait != 120 {
					t.Errorf("expected QueryMaxWait 120, got %d", cfg.QueryMaxWait)
				}
				if len(cfg.AllowedOrigins) != 2 {
					t.Errorf("expected 2 allowed origins, got %d", len(cfg.AllowedOrigins))
				}
			},
		},
		{
			name: "origins are trimmed",
			env: map[string]string{
				"ALLOWED_ORIGINS": "http://example.com , http://test.com",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.AllowedOrigins[1] != "http://test.com" {
					t.Errorf("expected trimmed origin, got %q", cfg.AllowedOrigins[1])
				}
			},
		},
		{
			name: "invalid QUERY_TIMEOUT",
			env: map[string]string{
				"QUERY_TIMEOUT": "invalid",
			},
			wantErr: true,
		},
		{
			name: "invalid QUERY_MAX_WAIT",
			env: map[string]string{
				"QUERY_MAX_WAIT": "invalid",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for k, v := range tt.env {
				os.Setenv(k, v)
			}

			// Load config
			cfg, err := Load()

			// Check error
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// Run custom checks
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
