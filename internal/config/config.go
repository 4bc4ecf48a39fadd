package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8931"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SeedFile           string        // path to an optional bookmarks.yaml seed file ("" = seeding disabled)
	SeedReloadInterval time.Duration // interval between seed re-imports (default: 24h)
	WriteTimeout       time.Duration // timeout for each background record write

	AllowedOrigins []string // extension origins allowed by CORS (empty = passthrough)
	AdminCIDRS     []string // IPs/CIDRs allowed on admin endpoints (empty = passthrough)
	TrustProxy     bool     // true => trust forwarded-for headers

	// Rate limiting for mutation endpoints
	RateBurst        int // token bucket capacity per client IP
	RateRefillPerMin int // tokens refilled per minute per client IP

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // dial timeout
	RedisRT             time.Duration // read timeout
	RedisWT             time.Duration // write timeout
	RedisMaxWait        time.Duration // max wait between connect retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisPoolSize       int           // connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	// Values already present in the environment win over .env entries.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("CLIPKEEPER_LISTEN_PORT", ":8931"),
		ShutdownTimeout: mustDuration("CLIPKEEPER_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("CLIPKEEPER_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CLIPKEEPER_PRETTY_LOG", true),

		// Seed import
		SeedFile:           getenv("CLIPKEEPER_SEED_FILE", ""),
		SeedReloadInterval: mustDuration("CLIPKEEPER_SEED_RELOAD_INTERVAL", 24*time.Hour),
		WriteTimeout:       mustDuration("CLIPKEEPER_WRITE_TIMEOUT", 5*time.Second),

		// Access restrictions
		AllowedOrigins: splitAndTrim(getenv("CLIPKEEPER_ALLOWED_ORIGINS", "")),
		AdminCIDRS:     splitAndTrim(getenv("CLIPKEEPER_ADMIN_CIDRS", "")),
		TrustProxy:     mustBool("CLIPKEEPER_TRUST_PROXY", false),

		// Rate limiting
		RateBurst:        getenvInt("CLIPKEEPER_RATE_BURST", 20),
		RateRefillPerMin: getenvInt("CLIPKEEPER_RATE_REFILL_PER_MIN", 60),

		// Redis settings
		RedisAddr:           getenv("CLIPKEEPER_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("CLIPKEEPER_REDIS_USERNAME", ""),
		RedisPassword:       getenv("CLIPKEEPER_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("CLIPKEEPER_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
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
