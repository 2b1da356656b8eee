package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SeedFile     string        // path to an optional seed.yaml (empty = seeding disabled)
	SeedInterval time.Duration // interval between seed re-checks (default: 24h)

	// Privacy section
	PrivacyPassword string        // soft-hide password, NOT a security boundary
	MaxAttempts     int           // wrong attempts before lockout (default: 3)
	LockoutDuration time.Duration // how long a lockout lasts (default: 5s)

	// Favicon decoration
	FaviconTimeout time.Duration // per-fetch timeout for favicon probes (default: 3s)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IP (e.g. "1.2.3.4, 5.6.7.8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	// Unlock endpoint rate limiting
	UnlockBurst  int // token bucket size for /api/privacy/unlock (default: 5)
	UnlockRefill int // tokens refilled per IP per minute (default: 10)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("LINKHIVE_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LINKHIVE_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LINKHIVE_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKHIVE_PRETTY_LOG", true),

		// Seed file
		SeedFile:     getenv("LINKHIVE_SEED_FILE", ""), // Optional, empty = seeding disabled
		SeedInterval: mustDuration("LINKHIVE_SEED_INTERVAL", 24*time.Hour),

		// Privacy section
		PrivacyPassword: getenv("LINKHIVE_PRIVACY_PASSWORD", "privacY"),
		MaxAttempts:     getenvInt("LINKHIVE_PRIVACY_MAX_ATTEMPTS", 3),
		LockoutDuration: mustDuration("LINKHIVE_PRIVACY_LOCKOUT", 5*time.Second),

		// Favicon decoration
		FaviconTimeout: mustDuration("LINKHIVE_FAVICON_TIMEOUT", 3*time.Second),

		// Redis settings
		RedisAddr:             getenv("LINKHIVE_REDIS_ADDR", "localhost:6379"),
		RedisUser:             getenv("LINKHIVE_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("LINKHIVE_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("LINKHIVE_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("LINKHIVE_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions (empty = open; this is a personal, local-first app)
		AllowedHosts: splitAndTrim(getenv("LINKHIVE_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("LINKHIVE_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("LINKHIVE_TRUST_PROXY", false),

		// Unlock endpoint rate limiting
		UnlockBurst:  getenvInt("LINKHIVE_UNLOCK_BURST", 5),
		UnlockRefill: getenvInt("LINKHIVE_UNLOCK_REFILL_PER_MIN", 10),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: LINKHIVE_REDIS_PASSWORD is required when LINKHIVE_REDIS_PASSWORD_REQUIRED=true")
	}

	if cfg.MaxAttempts < 1 {
		panic(fmt.Sprintf("❌ FATAL: LINKHIVE_PRIVACY_MAX_ATTEMPTS must be >= 1, got %d", cfg.MaxAttempts))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		cfgCopy.PrivacyPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
