// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Context keys exposed by the views
const (
	KeyLatestQuestionList = "latest_question_list"
	KeyQuestion           = "question"
	KeyChoices            = "choices"
)

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

// Fixture types

// QuestionFixture describes a question relative to the moment it is loaded.
// Days is negative for questions already published, positive for ones that
// have yet to be published.
type QuestionFixture struct {
	QuestionText string   `json:"question_text"`
	Days         int      `json:"days"`
	Choices      []string `json:"choices"`
}

// Response types

type IndexResponse struct {
	LatestQuestionList []Question `json:"latest_question_list"`
}

type DetailResponse struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
