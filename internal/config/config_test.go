package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PATHWISE_JWT_SECRET", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Addr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("token ttl = %v", cfg.TokenTTL)
	}
	if cfg.LogMode != "dev" {
		t.Errorf("log mode = %q", cfg.LogMode)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("PATHWISE_JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error without a JWT secret")
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("PATHWISE_JWT_SECRET", "s3cret")
	t.Setenv("PATHWISE_CORS_ORIGINS", "http://localhost:3000,https://app.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://app.example.com" {
		t.Errorf("origins = %v", cfg.CORSOrigins)
	}
}
