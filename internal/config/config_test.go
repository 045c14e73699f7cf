package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("base url = %q, want default", cfg.BaseURL)
	}
	if cfg.FrontendURL != "http://localhost:5173" {
		t.Errorf("frontend url = %q, want default", cfg.FrontendURL)
	}
	if cfg.SMTP.Port != "587" {
		t.Errorf("smtp port = %q, want 587", cfg.SMTP.Port)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("UNINEST_PORT", "9000")
	t.Setenv("UNINEST_DEV_MODE", "true")
	t.Setenv("UNINEST_FRONTEND_URL", "https://uninest.example")
	t.Setenv("UNINEST_SMTP_HOST", "smtp.example.com")
	t.Setenv("UNINEST_SMTP_FROM", "alerts@uninest.example")

	cfg := Load()

	if cfg.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Port)
	}
	if !cfg.DevMode {
		t.Error("expected dev mode enabled")
	}
	if cfg.FrontendURL != "https://uninest.example" {
		t.Errorf("frontend url = %q", cfg.FrontendURL)
	}
	if !cfg.SMTP.IsConfigured() {
		t.Error("expected SMTP configured")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	t.Setenv("UNINEST_PORT", "not-a-number")
	t.Setenv("UNINEST_DEV_MODE", "maybe")

	cfg := Load()

	if cfg.Port != 8080 {
		t.Errorf("port = %d, want fallback 8080", cfg.Port)
	}
	if cfg.DevMode {
		t.Error("expected dev mode fallback false")
	}
}
