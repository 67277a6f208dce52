// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls server.

Visitors browse published questions and view one question at a time along
with its choices and vote counts. A question is published once its pub date
has passed; until then it is absent from the index and its pages answer 404.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..."

A .env file in the working directory is loaded first, if present.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default for sqlite: file:polls.db)
  - INDEX_LIMIT (-limit): Questions on the index page, 0 for all (default: 5)
  - REDIS_ADDR (-redis): Enables the Redis question cache
  - CACHE_TTL (-cache-ttl): Cache entry lifetime (default: 5m)
  - SEED_FILE (-seed): JSON fixtures to load at startup

# Architecture

  - handlers: index, detail, and results pages
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Question and Choice, visibility rule, response types
  - db: Connections, schema creation, question store, fixtures
  - cache: Redis read-through cache for question lookups
  - clock: Injectable current time
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
