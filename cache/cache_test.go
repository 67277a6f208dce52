// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/polls/clock"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/router"
	"github.com/danielhkuo/polls/testutil"
)

type fakeReader struct {
	questions map[int64]models.Question
	gets      int
}

func (f *fakeReader) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	f.gets++
	q, ok := f.questions[id]
	if !ok {
		return models.Question{}, db.ErrNotFound
	}
	return q, nil
}

func (f *fakeReader) ListPublished(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	return []models.Question{}, nil
}

func (f *fakeReader) ListChoices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	return []models.Choice{}, nil
}

// unreachableClient points at a closed local port so every command fails fast
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestWrap_NilClient(t *testing.T) {
	next := &fakeReader{}
	if got := Wrap(nil, next, time.Minute); got != db.QuestionReader(next) {
		t.Error("Expected Wrap with nil client to return the reader unchanged")
	}
}

func TestGetQuestion_FallsBackWhenRedisDown(t *testing.T) {
	pubDate := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	next := &fakeReader{questions: map[int64]models.Question{
		7: {ID: 7, QuestionText: "Cached?", PubDate: pubDate},
	}}
	c := Wrap(unreachableClient(t), next, time.Minute)

	q, err := c.GetQuestion(context.Background(), 7)
	if err != nil {
		t.Fatalf("Expected fallback to store, got error: %v", err)
	}
	if q.QuestionText != "Cached?" || !q.PubDate.Equal(pubDate) {
		t.Errorf("Unexpected question: %+v", q)
	}
	if next.gets != 1 {
		t.Errorf("Expected 1 store lookup, got %d", next.gets)
	}
}

func TestGetQuestion_NotFoundPassesThrough(t *testing.T) {
	next := &fakeReader{questions: map[int64]models.Question{}}
	c := Wrap(unreachableClient(t), next, time.Minute)

	_, err := c.GetQuestion(context.Background(), 1)
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("Expected db.ErrNotFound, got %v", err)
	}
}

func TestQuestionKey(t *testing.T) {
	if got := questionKey(42); got != "polls:question:42" {
		t.Errorf("Expected 'polls:question:42', got '%s'", got)
	}
}

// newTestRedis starts an in-process Redis server and a client for it
func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestGetQuestion_CacheHit(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	pubDate := time.Date(2025, time.March, 1, 8, 30, 15, 123456789, tokyo)
	next := &fakeReader{questions: map[int64]models.Question{
		3: {ID: 3, QuestionText: "Hit me", PubDate: pubDate},
	}}
	mr, client := newTestRedis(t)
	c := Wrap(client, next, time.Minute)
	ctx := context.Background()

	first, err := c.GetQuestion(ctx, 3)
	if err != nil {
		t.Fatalf("GetQuestion failed: %v", err)
	}
	second, err := c.GetQuestion(ctx, 3)
	if err != nil {
		t.Fatalf("GetQuestion failed: %v", err)
	}

	if next.gets != 1 {
		t.Errorf("Expected 1 store lookup, got %d", next.gets)
	}
	if second.ID != 3 || second.QuestionText != "Hit me" {
		t.Errorf("Unexpected cached question: %+v", second)
	}
	if !second.PubDate.Equal(pubDate) || !second.PubDate.Equal(first.PubDate) {
		t.Errorf("Expected pub date %v, got %v", pubDate, second.PubDate)
	}

	if !mr.Exists(questionKey(3)) {
		t.Fatal("Expected question to be stored in Redis")
	}
	if ttl := mr.TTL(questionKey(3)); ttl != time.Minute {
		t.Errorf("Expected TTL 1m, got %v", ttl)
	}
}

func TestGetQuestion_ExpiredEntryReloads(t *testing.T) {
	next := &fakeReader{questions: map[int64]models.Question{
		1: {ID: 1, QuestionText: "Expiring"},
	}}
	mr, client := newTestRedis(t)
	c := Wrap(client, next, time.Minute)
	ctx := context.Background()

	if _, err := c.GetQuestion(ctx, 1); err != nil {
		t.Fatalf("GetQuestion failed: %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := c.GetQuestion(ctx, 1); err != nil {
		t.Fatalf("GetQuestion failed: %v", err)
	}

	if next.gets != 2 {
		t.Errorf("Expected 2 store lookups after expiry, got %d", next.gets)
	}
}

func TestGetQuestion_CorruptEntryDiscarded(t *testing.T) {
	next := &fakeReader{questions: map[int64]models.Question{
		5: {ID: 5, QuestionText: "Fresh copy"},
	}}
	mr, client := newTestRedis(t)
	c := Wrap(client, next, time.Minute)

	if err := mr.Set(questionKey(5), "{not json"); err != nil {
		t.Fatalf("Failed to plant entry: %v", err)
	}

	q, err := c.GetQuestion(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetQuestion failed: %v", err)
	}
	if q.QuestionText != "Fresh copy" {
		t.Errorf("Expected store copy, got %+v", q)
	}
	if next.gets != 1 {
		t.Errorf("Expected 1 store lookup, got %d", next.gets)
	}

	stored, err := mr.Get(questionKey(5))
	if err != nil {
		t.Fatalf("Expected entry to be rewritten: %v", err)
	}
	var cached models.Question
	if err := json.Unmarshal([]byte(stored), &cached); err != nil || cached.QuestionText != "Fresh copy" {
		t.Errorf("Expected rewritten entry, got %q", stored)
	}
}

func TestGetQuestion_NotFoundNotCached(t *testing.T) {
	next := &fakeReader{questions: map[int64]models.Question{}}
	mr, client := newTestRedis(t)
	c := Wrap(client, next, time.Minute)

	if _, err := c.GetQuestion(context.Background(), 9); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("Expected db.ErrNotFound, got %v", err)
	}
	if mr.Exists(questionKey(9)) {
		t.Error("Missing question should not be cached")
	}
}

// countingReader counts lookups that reach the store behind the cache
type countingReader struct {
	db.QuestionReader
	gets int
}

func (c *countingReader) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	c.gets++
	return c.QuestionReader.GetQuestion(ctx, id)
}

func TestCachedFutureQuestionBecomesVisible(t *testing.T) {
	store := db.NewStore(testutil.SetupTestDB(t))
	future := testutil.CreateQuestion(t, store, "Scheduled question", 1)

	counter := &countingReader{QuestionReader: store}
	_, client := newTestRedis(t)
	cached := Wrap(client, counter, time.Hour)
	cfg := testutil.GetTestConfig()
	path := "/polls/" + strconv.FormatInt(future.ID, 10) + "/"

	before := router.NewRouter(cached, cfg, testutil.Clock())
	w := httptest.NewRecorder()
	before.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	after := router.NewRouter(cached, cfg, clock.Fixed(testutil.Now.Add(25*time.Hour)))
	w = httptest.NewRecorder()
	after.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertContains(t, w, "Scheduled question")

	if counter.gets != 1 {
		t.Errorf("Expected the second request to be served from cache, got %d store lookups", counter.gets)
	}
}
