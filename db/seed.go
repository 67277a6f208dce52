// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/danielhkuo/polls/models"
)

// OffsetDays shifts now by whole days. Negative days are in the past.
func OffsetDays(now time.Time, days int) time.Time {
	return now.Add(time.Duration(days) * 24 * time.Hour)
}

// Seed loads a JSON array of question fixtures, dating each one relative to
// now. Fixtures whose question text is already stored are skipped, so
// loading the same file again changes nothing. The whole load is one
// transaction. Returns the number of questions created.
func Seed(ctx context.Context, w QuestionWriter, r io.Reader, now time.Time) (int, error) {
	var fixtures []models.QuestionFixture
	if err := json.NewDecoder(r).Decode(&fixtures); err != nil {
		return 0, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	for i, f := range fixtures {
		if f.QuestionText == "" {
			return 0, fmt.Errorf("fixture %d: question_text is required", i)
		}
	}

	created := 0
	err := w.InTx(ctx, func(tx QuestionWriter) error {
		for i, f := range fixtures {
			exists, err := tx.QuestionExists(ctx, f.QuestionText)
			if err != nil {
				return fmt.Errorf("fixture %d: %w", i, err)
			}
			if exists {
				continue
			}

			q, err := tx.CreateQuestion(ctx, f.QuestionText, OffsetDays(now, f.Days))
			if err != nil {
				return fmt.Errorf("fixture %d: %w", i, err)
			}

			for _, text := range f.Choices {
				if _, err := tx.CreateChoice(ctx, q.ID, text); err != nil {
					return fmt.Errorf("fixture %d: %w", i, err)
				}
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}
