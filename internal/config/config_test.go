package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_DSN", "postgres://test")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" || cfg.IsProduction() {
		t.Errorf("expected development env, got %s", cfg.Env)
	}
	if cfg.TokenTTL != 7*24*time.Hour {
		t.Errorf("expected 7d token TTL, got %v", cfg.TokenTTL)
	}
	if cfg.MatchTick != 5*time.Second {
		t.Errorf("expected 5s match tick, got %v", cfg.MatchTick)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("MATCH_TICK", "1s")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected 24h TTL, got %v", cfg.TokenTTL)
	}
	if cfg.MatchTick != time.Second {
		t.Errorf("expected 1s tick, got %v", cfg.MatchTick)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("expected redis db 3, got %d", cfg.RedisDB)
	}
}

func TestLoad_RequiredFields(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://test")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("expected error without JWT_SECRET")
	}

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_DSN", "")
	if _, err := Load(); err == nil {
		t.Error("expected error without DATABASE_DSN")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_TTL", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid TOKEN_TTL")
	}
}
