// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
)

// Questions caches question lookups in Redis. Entries hold the stored
// question, not a visibility decision, so a cached future question still
// becomes visible once its pub date passes.
type Questions struct {
	db.QuestionReader
	client *redis.Client
	ttl    time.Duration
}

// Wrap returns next unchanged when client is nil
func Wrap(client *redis.Client, next db.QuestionReader, ttl time.Duration) db.QuestionReader {
	if client == nil {
		return next
	}
	return &Questions{QuestionReader: next, client: client, ttl: ttl}
}

func (c *Questions) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	key := questionKey(id)

	v, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var q models.Question
		if err := json.Unmarshal(v, &q); err == nil {
			return q, nil
		}
		slog.Error("discarding corrupt cache entry", "key", key)
	case err != redis.Nil:
		slog.Error("cache read failed", "key", key, "error", err)
	}

	q, err := c.QuestionReader.GetQuestion(ctx, id)
	if err != nil {
		return models.Question{}, err
	}

	b, err := json.Marshal(q)
	if err != nil {
		return q, nil
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		slog.Error("cache write failed", "key", key, "error", err)
	}

	return q, nil
}

func questionKey(id int64) string {
	return "polls:question:" + strconv.FormatInt(id, 10)
}
