// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/clock"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
)

// Now is the instant every test clock is frozen at
var Now = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

// Clock returns a clock frozen at Now
func Clock() clock.Clock {
	return clock.Fixed(Now)
}

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.DriverSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: db.DriverSQLite,
		DatabaseURL:  ":memory:",
		IndexLimit:   5,
		CacheTTL:     time.Minute,
	}
}

// CreateQuestion creates a question published the given number of days
// offset from Now (negative for questions published in the past, positive
// for questions that have yet to be published)
func CreateQuestion(t *testing.T, store *db.Store, text string, days int) models.Question {
	t.Helper()

	q, err := store.CreateQuestion(context.Background(), text, db.OffsetDays(Now, days))
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return q
}

// AddChoice adds a choice to a question and returns it
func AddChoice(t *testing.T, store *db.Store, questionID int64, text string) models.Choice {
	t.Helper()

	c, err := store.CreateChoice(context.Background(), questionID, text)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}
	return c
}

// SetVotes sets a choice's vote count directly
func SetVotes(t *testing.T, conn *sql.DB, choiceID int64, votes int) {
	t.Helper()

	if _, err := conn.Exec(`UPDATE choice SET votes = $1 WHERE id = $2`, votes, choiceID); err != nil {
		t.Fatalf("Failed to set votes: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// JSONHeaders asks for the JSON variant of a page
var JSONHeaders = map[string]string{"Accept": "application/json"}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains text
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertNotContains checks that the response body does not contain text
func AssertNotContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body not to contain %q. Body: %s", text, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
