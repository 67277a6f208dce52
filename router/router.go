// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/clock"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
)

func NewRouter(questions db.QuestionReader, cfg cliparse.Config, clk clock.Clock) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(questions, cfg, clk)

	// Health check
	mux.HandleFunc("GET /health", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	// Public pages
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(pollHandler.Index))
	mux.HandleFunc("GET /polls/{id}/{$}", middleware.WithLogging(pollHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results/{$}", middleware.WithLogging(pollHandler.Results))

	// Root endpoint
	mux.HandleFunc("GET /{$}", middleware.WithLogging(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls/", http.StatusFound)
	}))

	return middleware.CORS(mux)
}
