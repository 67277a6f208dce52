// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/testutil"
)

const fixtures = `[
	{"question_text": "Past 1", "days": -10, "choices": ["Yes", "No"]},
	{"question_text": "Past 2", "days": -20},
	{"question_text": "Today", "days": 0, "choices": ["Maybe"]},
	{"question_text": "Tomorrow", "days": 1},
	{"question_text": "Next month", "days": 30}
]`

// TestListAndDetailAgree checks that a question is in the index exactly
// when its detail and results pages are reachable
func TestListAndDetailAgree(t *testing.T) {
	store := db.NewStore(testutil.SetupTestDB(t))
	cfg := testutil.GetTestConfig()
	cfg.IndexLimit = 0
	h := NewPollHandler(store, cfg, testutil.Clock())

	n, err := db.Seed(context.Background(), store, strings.NewReader(fixtures), testutil.Now)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	listed := map[int64]bool{}
	for _, q := range indexList(t, h) {
		listed[q.ID] = true
	}
	if len(listed) != 3 {
		t.Errorf("Expected 3 published questions, got %d", len(listed))
	}

	for id := int64(1); id <= int64(n); id++ {
		for _, path := range []string{detailPath(id), detailPath(id) + "results/"} {
			w := serve(h, testutil.MakeRequest("GET", path, nil))

			switch {
			case listed[id] && w.Code != http.StatusOK:
				t.Errorf("%s: listed but returned %d", path, w.Code)
			case !listed[id] && w.Code != http.StatusNotFound:
				t.Errorf("%s: not listed but returned %d", path, w.Code)
			}
		}
	}
}

func TestIndexOrderMatchesPubDate(t *testing.T) {
	store := db.NewStore(testutil.SetupTestDB(t))
	h := NewPollHandler(store, testutil.GetTestConfig(), testutil.Clock())

	if _, err := db.Seed(context.Background(), store, strings.NewReader(fixtures), testutil.Now); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	list := indexList(t, h)
	expected := []string{"Today", "Past 1", "Past 2"}
	if len(list) != len(expected) {
		t.Fatalf("Expected %d questions, got %d", len(expected), len(list))
	}
	for i, q := range list {
		if q.QuestionText != expected[i] {
			t.Errorf("Position %d: expected %q, got %q", i, expected[i], q.QuestionText)
		}
	}

	// The HTML page lists them in the same order
	w := serve(h, testutil.MakeRequest("GET", "/polls/", nil))
	body := w.Body.String()
	last := -1
	for _, text := range expected {
		i := strings.Index(body, text)
		if i < 0 {
			t.Fatalf("Expected %q in body", text)
		}
		if i < last {
			t.Errorf("%q rendered out of order", text)
		}
		last = i
	}

	var recent []string
	for _, q := range list {
		if q.WasPublishedRecently(testutil.Now) {
			recent = append(recent, q.QuestionText)
		}
	}
	if len(recent) != 1 || recent[0] != "Today" {
		t.Errorf("Expected only 'Today' to be recent, got %v", recent)
	}
}

func TestDetailChoicesFromFixtures(t *testing.T) {
	store := db.NewStore(testutil.SetupTestDB(t))
	h := NewPollHandler(store, testutil.GetTestConfig(), testutil.Clock())

	if _, err := db.Seed(context.Background(), store, strings.NewReader(fixtures), testutil.Now); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	w := serve(h, testutil.MakeRequest("GET", detailPath(1), testutil.JSONHeaders))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DetailResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Question.QuestionText != "Past 1" {
		t.Errorf("Expected 'Past 1', got %q", resp.Question.QuestionText)
	}
	if len(resp.Choices) != 2 || resp.Choices[0].ChoiceText != "Yes" || resp.Choices[1].ChoiceText != "No" {
		t.Errorf("Unexpected choices: %+v", resp.Choices)
	}
}
