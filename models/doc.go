// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, fixture, and response types for the polls site.

# Domain Types

  - Question: poll prompt with a publication date
  - Choice: answer attached to a question, with its vote count

# Visibility

A question is published once its pub date is not after the current time:

	if q.Published(now) { ... }

WasPublishedRecently narrows that to the last RecencyWindow (one day):

	q.WasPublishedRecently(now)

Both take now as an argument; callers obtain it from a clock.Clock.

# Response Types

JSON variants of the pages:

  - IndexResponse: latest_question_list
  - DetailResponse: question, choices
  - ErrorResponse: error, message

# Context Keys

	KeyLatestQuestionList = "latest_question_list"
	KeyQuestion           = "question"
	KeyChoices            = "choices"
*/
package models
