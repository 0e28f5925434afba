package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.App.Port)
	}
	if !cfg.App.IsDev() {
		t.Fatalf("expected dev env by default, got %s", cfg.App.Env)
	}
	if cfg.Checkout.ProcessingDelay != 1500*time.Millisecond {
		t.Fatalf("unexpected processing delay %s", cfg.Checkout.ProcessingDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SHOPCORE_APP_ENV", "prod")
	t.Setenv("SHOPCORE_APP_PORT", "9000")
	t.Setenv("SHOPCORE_CHECKOUT_PROCESSING_DELAY", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected prod env, got %s", cfg.App.Env)
	}
	if cfg.App.Port != "9000" {
		t.Fatalf("expected port 9000, got %s", cfg.App.Port)
	}
	if cfg.Checkout.ProcessingDelay != 0 {
		t.Fatalf("expected zero delay, got %s", cfg.Checkout.ProcessingDelay)
	}
}
