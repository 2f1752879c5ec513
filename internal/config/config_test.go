package config

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when DATABASE_URL is empty")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/rongyi")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.TextMatch != MatchEngine {
		t.Errorf("TextMatch = %q, want %q", cfg.TextMatch, MatchEngine)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.BcryptCost)
	}
	if cfg.DBSlowQuery != 200*time.Millisecond {
		t.Errorf("DBSlowQuery = %v, want 200ms", cfg.DBSlowQuery)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://:memory:")
	t.Setenv("PORT", "9090")
	t.Setenv("TEXT_MATCH", " Insensitive ")
	t.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TextMatch != MatchInsensitive {
		t.Errorf("TextMatch = %q", cfg.TextMatch)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{TextMatch: "engine", LogFormat: "json", BcryptCost: 10}, false},
		{"text format", Config{TextMatch: "sensitive", LogFormat: "TEXT", BcryptCost: 4}, false},
		{"bad match", Config{TextMatch: "fuzzy", LogFormat: "json", BcryptCost: 10}, true},
		{"bad format", Config{TextMatch: "engine", LogFormat: "xml", BcryptCost: 10}, true},
		{"cost too low", Config{TextMatch: "engine", LogFormat: "json", BcryptCost: 3}, true},
		{"cost too high", Config{TextMatch: "engine", LogFormat: "json", BcryptCost: 32}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
