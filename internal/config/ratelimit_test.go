package config

import (
	"testing"
	"time"
)

func TestLoadLoginRateLimitDefaults(t *testing.T) {
	cfg := LoadLoginRateLimit()
	if !cfg.Enabled {
		t.Fatalf("expected limiter enabled by default")
	}
	if cfg.Capacity != 5 || cfg.RefillTokens != 1 {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.RefillInterval != 30*time.Second {
		t.Fatalf("refill interval = %v", cfg.RefillInterval)
	}
	if cfg.TTL < 5*cfg.RefillInterval {
		t.Fatalf("TTL %v shorter than 5 refill intervals", cfg.TTL)
	}
}

func TestLoadLoginRateLimitOverridesAndClamps(t *testing.T) {
	t.Setenv("LOGIN_RATE_ENABLED", "false")
	t.Setenv("LOGIN_RATE_CAPACITY", "0")
	t.Setenv("LOGIN_RATE_REFILL_INTERVAL", "2s")
	t.Setenv("LOGIN_RATE_TTL", "1s")

	cfg := LoadLoginRateLimit()
	if cfg.Enabled {
		t.Fatalf("expected limiter disabled")
	}
	if cfg.Capacity != 1 {
		t.Fatalf("capacity = %d, want clamp to 1", cfg.Capacity)
	}
	if cfg.RefillInterval != 2*time.Second {
		t.Fatalf("refill interval = %v", cfg.RefillInterval)
	}
	if cfg.TTL != 10*time.Second {
		t.Fatalf("TTL = %v, want clamp to 5x interval", cfg.TTL)
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "value")
	t.Setenv("X_INT", "42")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_DUR", "90s")

	if got := envStr("X_STR", "d"); got != "value" {
		t.Fatalf("envStr = %q", got)
	}
	if got := envStr("X_MISSING", "d"); got != "d" {
		t.Fatalf("envStr default = %q", got)
	}
	if got := envInt("X_INT", 0); got != 42 {
		t.Fatalf("envInt = %d", got)
	}
	if got := envBool("X_BOOL", false); !got {
		t.Fatalf("envBool = %v", got)
	}
	if got := envDur("X_DUR", time.Second); got != 90*time.Second {
		t.Fatalf("envDur = %v", got)
	}
	if got := envDur("X_MISSING", time.Second); got != time.Second {
		t.Fatalf("envDur default = %v", got)
	}
}
