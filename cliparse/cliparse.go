// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	IndexLimit   int
	RedisAddr    string
	CacheTTL     time.Duration
	SeedFile     string
}

const (
	defaultPort       = 3318
	defaultSQLiteURL  = "file:polls.db"
	defaultIndexLimit = 5
	defaultCacheTTL   = 5 * time.Minute
)

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("polls", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.IntVar(&cfg.IndexLimit, "limit", -1, "Questions shown on the index page (0 for all)")
	fs.StringVar(&cfg.RedisAddr, "redis", "", "Redis address for the question cache")
	fs.DurationVar(&cfg.CacheTTL, "cache-ttl", 0, "Question cache TTL")
	fs.StringVar(&cfg.SeedFile, "seed", "", "JSON fixtures to load at startup")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := intEnv("PORT", defaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLiteURL
	}

	if cfg.IndexLimit < 0 {
		limit, err := intEnv("INDEX_LIMIT", defaultIndexLimit)
		if err != nil {
			return Config{}, err
		}
		if limit < 0 {
			return Config{}, errors.New("INDEX_LIMIT must not be negative")
		}
		cfg.IndexLimit = limit
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}

	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
		if ttlStr := os.Getenv("CACHE_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid CACHE_TTL env variable")
			}
			cfg.CacheTTL = ttl
		}
	}
	if cfg.CacheTTL < 0 {
		return Config{}, errors.New("cache TTL must be positive")
	}

	if cfg.SeedFile == "" {
		cfg.SeedFile = os.Getenv("SEED_FILE")
	}

	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return v, nil
}
