// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls site.

# Route Registration

NewRouter returns the configured handler, wrapped in CORS:

	h := router.NewRouter(questions, cfg, clock.Real{})

# Endpoints

	GET /health                 - Health check
	GET /                       - Redirects to /polls/
	GET /polls/                 - Published questions, newest first
	GET /polls/{id}/            - One published question with its choices
	GET /polls/{id}/results/    - Vote counts for a published question

Question pages answer 404 for unknown and not-yet-published questions
alike. Send Accept: application/json for the JSON variant of any page.
*/
package router
