// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseURL: Connection string (default for sqlite: file:polls.db)
  - IndexLimit: Questions on the index page, 0 for all (default: 5)
  - RedisAddr: Redis address; empty disables the question cache
  - CacheTTL: Question cache entry lifetime (default: 5m)
  - SeedFile: JSON fixtures loaded at startup

# CLI Flags and Environment Variables

	-p          PORT
	-d          DATABASE_URL
	-t          DATABASE_TYPE
	-limit      INDEX_LIMIT
	-redis      REDIS_ADDR
	-cache-ttl  CACHE_TTL
	-seed       SEED_FILE

CLI flags take precedence over environment variables. main loads a .env
file, if present, before parsing.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is neither sqlite nor postgres
  - postgres is selected without a DATABASE_URL
  - PORT, INDEX_LIMIT, or CACHE_TTL cannot be parsed or is negative
*/
package cliparse
