package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/polls/cache"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/clock"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/router"
)

func main() {
	var err error

	// Optional .env file; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	store := db.NewStore(dbConn)

	if cfg.SeedFile != "" {
		if err := seed(store, cfg.SeedFile); err != nil {
			slog.Error("seeding failed", "file", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
	}

	// Question cache
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := redisClient.Ping(ctx).Err()
		cancel()
		if err != nil {
			slog.Error("redis unreachable, caching disabled", "addr", cfg.RedisAddr, "error", err)
			redisClient.Close()
			redisClient = nil
		} else {
			defer redisClient.Close()
			slog.Info("Question cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
		}
	}
	questions := cache.Wrap(redisClient, store, cfg.CacheTTL)

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(questions, cfg, clock.Real{}),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func seed(store *db.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := db.Seed(context.Background(), store, f, clock.Real{}.Now())
	if err != nil {
		return err
	}
	slog.Info("Loaded fixtures", "file", path, "questions", n)
	return nil
}
