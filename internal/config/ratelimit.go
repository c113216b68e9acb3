package config

import (
	"os"
	"strconv"
	"time"
)

// LoginRateLimitConfig tunes the token bucket guarding the login
// endpoint. The bucket is keyed per client IP; capacity is the burst
// size and RefillTokens/RefillInterval the steady-state rate.
type LoginRateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

// LoadLoginRateLimit reads limiter settings from the environment. The
// defaults allow a burst of 5 attempts refilling one per 30 seconds,
// which is generous for humans and hostile to credential stuffing.
func LoadLoginRateLimit() LoginRateLimitConfig {
	cfg := LoginRateLimitConfig{
		Enabled:        envBool("LOGIN_RATE_ENABLED", true),
		Capacity:       envInt("LOGIN_RATE_CAPACITY", 5),
		RefillTokens:   envInt("LOGIN_RATE_REFILL_TOKENS", 1),
		RefillInterval: envDur("LOGIN_RATE_REFILL_INTERVAL", 30*time.Second),
		TTL:            envDur("LOGIN_RATE_TTL", 10*time.Minute),
		Prefix:         envStr("LOGIN_RATE_PREFIX", "rl:login"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if minTTL := 5 * cfg.RefillInterval; cfg.TTL < minTTL {
		cfg.TTL = minTTL
	}
	return cfg
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func envBool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			return dur
		}
	}
	return d
}
