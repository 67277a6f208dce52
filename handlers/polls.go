// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/clock"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
)

const notFoundMessage = "No question matches the given query."

type PollHandler struct {
	questions db.QuestionReader
	cfg       cliparse.Config
	clock     clock.Clock
}

func NewPollHandler(questions db.QuestionReader, cfg cliparse.Config, clk clock.Clock) *PollHandler {
	return &PollHandler{questions: questions, cfg: cfg, clock: clk}
}

type indexPage struct {
	LatestQuestionList []models.Question
	Now                time.Time
}

type questionPage struct {
	Question models.Question
	Choices  []models.Choice
	Now      time.Time
}

// Index handles GET /polls/
// Lists published questions, most recently published first
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.clock.Now()

	questions, err := h.questions.ListPublished(r.Context(), now, h.cfg.IndexLimit)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		serverError(w, r)
		return
	}

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusOK, models.IndexResponse{
			LatestQuestionList: questions,
		})
		return
	}

	render(w, r, http.StatusOK, "index.html", indexPage{
		LatestQuestionList: questions,
		Now:                now,
	})
}

// Detail handles GET /polls/{id}/
func (h *PollHandler) Detail(w http.ResponseWriter, r *http.Request) {
	h.showQuestion(w, r, "detail.html")
}

// Results handles GET /polls/{id}/results/
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	h.showQuestion(w, r, "results.html")
}

// showQuestion renders a single published question with its choices.
// Unknown and not-yet-published questions get the same 404.
func (h *PollHandler) showQuestion(w http.ResponseWriter, r *http.Request, page string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		notFound(w, r)
		return
	}

	now := h.clock.Now()

	q, err := h.questions.GetQuestion(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		notFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "question_id", id, "error", err)
		serverError(w, r)
		return
	}

	if !q.Published(now) {
		notFound(w, r)
		return
	}

	choices, err := h.questions.ListChoices(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "question_id", id, "error", err)
		serverError(w, r)
		return
	}

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusOK, models.DetailResponse{
			Question: q,
			Choices:  choices,
		})
		return
	}

	render(w, r, http.StatusOK, page, questionPage{
		Question: q,
		Choices:  choices,
		Now:      now,
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	if middleware.WantsJSON(r) {
		middleware.ErrorResponse(w, http.StatusNotFound, notFoundMessage)
		return
	}
	render(w, r, http.StatusNotFound, "404.html", nil)
}

func serverError(w http.ResponseWriter, r *http.Request) {
	if middleware.WantsJSON(r) {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
