// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls site.

# Handler Types

PollHandler serves every public page. It is created with a question reader,
the configuration, and a clock:

	pollHandler := handlers.NewPollHandler(questions, cfg, clock.Real{})

# Pages

	GET /polls/              → Index
	GET /polls/{id}/         → Detail
	GET /polls/{id}/results/ → Results

Index lists published questions, most recent first, up to cfg.IndexLimit.
With no published questions it reads "No polls are available."

Detail and Results look the question up by ID and answer 404 when it does
not exist or is not yet published, with the same body in both cases.

# Rendering

Pages are html/template files embedded from templates/. Publication ages are
rendered with go-humanize ("published 3 days ago"). A request with
Accept: application/json gets the page data as JSON instead:

	{"latest_question_list": [...]}
	{"question": {...}, "choices": [...]}
*/
package handlers
