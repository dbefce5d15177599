package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// ServerConfig holds the settings of the HTTP server. Each field corresponds
// to an environment variable.
type ServerConfig struct {
	// Addr is the listen address (SHOWORDER_ADDR, default ":8080")
	Addr string

	// MaxTimeout caps the solver timeout a request may ask for
	// (SHOWORDER_MAX_TIMEOUT, default 60s)
	MaxTimeout time.Duration

	// BodyLimit caps the size of a request body (SHOWORDER_BODY_LIMIT, default "1M")
	BodyLimit string

	RateLimit RateLimitConfig
	Redis     RedisConfig
}

// RateLimitConfig configures the token bucket in front of the order endpoint.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

// RedisConfig locates the redis server backing the rate limiter.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoadServerConfig reads the server settings from the environment after
// loading envFile, if it exists. Variables already set in the environment
// win over the file.
func LoadServerConfig(envFile string) (ServerConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return ServerConfig{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := ServerConfig{
		Addr:       envStr("SHOWORDER_ADDR", ":8080"),
		MaxTimeout: envDur("SHOWORDER_MAX_TIMEOUT", 60*time.Second),
		BodyLimit:  envStr("SHOWORDER_BODY_LIMIT", "1M"),
		RateLimit: RateLimitConfig{
			Enabled:        envBool("RATE_LIMIT_ENABLED", true),
			Capacity:       envInt("RATE_LIMIT_CAPACITY", 10),
			RefillTokens:   envInt("RATE_LIMIT_REFILL_TOKENS", 1),
			RefillInterval: envDur("RATE_LIMIT_REFILL_INTERVAL", 6*time.Second),
			TTL:            envDur("RATE_LIMIT_TTL", 10*time.Minute),
			Prefix:         envStr("RATE_LIMIT_PREFIX", "showorder:rl"),
		},
		Redis: RedisConfig{
			Addr:     envStr("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
	}
	if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
		cfg.Redis.Addr = host + ":" + port
	}

	rl := &cfg.RateLimit
	if rl.Capacity < 1 {
		rl.Capacity = 1
	}
	if rl.RefillTokens < 1 {
		rl.RefillTokens = 1
	}
	if rl.RefillInterval <= 0 {
		rl.RefillInterval = time.Second
	}
	if minTTL := 5 * rl.RefillInterval; rl.TTL < minTTL {
		rl.TTL = minTTL
	}

	if cfg.MaxTimeout <= 0 {
		return cfg, fmt.Errorf("%w: SHOWORDER_MAX_TIMEOUT must be positive, got %s", ErrInvalidSettings, cfg.MaxTimeout)
	}
	return cfg, nil
}

// NewRedisClient connects to redis. It returns nil when the server cannot be
// reached so callers can run without rate limiting.
func NewRedisClient(ctx context.Context, cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	switch strings.ToLower(os.Getenv(k)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	if dur, err := time.ParseDuration(os.Getenv(k)); err == nil {
		return dur
	}
	return d
}
