package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("FORMCHECK_MAX_TOKENS", "")

	cfg := Load("")
	if cfg.Port != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.CORSOrigins != "*" {
		t.Fatalf("expected allow-all CORS, got %q", cfg.CORSOrigins)
	}
	if cfg.MaxTokens != 1024 {
		t.Fatalf("expected default max tokens 1024, got %d", cfg.MaxTokens)
	}
	if cfg.IsDev() {
		t.Fatal("expected production mode by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("FORMCHECK_MAX_TOKENS", "2048")

	cfg := Load("")
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Fatal("expected dev mode")
	}
	if cfg.MaxTokens != 2048 {
		t.Fatalf("expected max tokens 2048, got %d", cfg.MaxTokens)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("FORMCHECK_MAX_TOKENS", "lots")

	cfg := Load("")
	if cfg.MaxTokens != 1024 {
		t.Fatalf("expected fallback to 1024, got %d", cfg.MaxTokens)
	}
}
