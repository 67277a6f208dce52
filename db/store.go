// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/polls/models"
)

var ErrNotFound = errors.New("not found")

// QuestionReader is the read side of the question store used by the views
type QuestionReader interface {
	GetQuestion(ctx context.Context, id int64) (models.Question, error)
	ListPublished(ctx context.Context, now time.Time, limit int) ([]models.Question, error)
	ListChoices(ctx context.Context, questionID int64) ([]models.Choice, error)
}

// QuestionWriter is the write side of the question store used by Seed
type QuestionWriter interface {
	InTx(ctx context.Context, fn func(w QuestionWriter) error) error
	QuestionExists(ctx context.Context, text string) (bool, error)
	CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error)
	CreateChoice(ctx context.Context, questionID int64, text string) (models.Choice, error)
}

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	conn *sql.DB
	db   querier
}

var (
	_ QuestionReader = (*Store)(nil)
	_ QuestionWriter = (*Store)(nil)
)

func NewStore(db *sql.DB) *Store {
	return &Store{conn: db, db: db}
}

// InTx runs fn against a store bound to a single transaction, committing
// if fn returns nil and rolling back otherwise. Nested calls reuse the
// outer transaction.
func (s *Store) InTx(ctx context.Context, fn func(w QuestionWriter) error) error {
	if s.conn == nil {
		return fn(s)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Store{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// QuestionExists reports whether a question with exactly this text is stored
func (s *Store) QuestionExists(ctx context.Context, text string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM question WHERE question_text = $1)
	`, text).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query question: %w", err)
	}
	return exists, nil
}

// CreateQuestion inserts a question and returns it with its assigned ID
func (s *Store) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error) {
	q := models.Question{QuestionText: text, PubDate: pubDate.UTC()}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, q.QuestionText, q.PubDate).Scan(&q.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return q, nil
}

// CreateChoice attaches a choice with zero votes to a question
func (s *Store) CreateChoice(ctx context.Context, questionID int64, text string) (models.Choice, error) {
	c := models.Choice{QuestionID: questionID, ChoiceText: text}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text)
		VALUES ($1, $2)
		RETURNING id
	`, questionID, text).Scan(&c.ID)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}

	return c, nil
}

// GetQuestion looks up a question by ID regardless of its pub date.
// Returns ErrNotFound if no such question exists.
func (s *Store) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id).Scan(&q.ID, &q.QuestionText, &q.PubDate)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}

	q.PubDate = q.PubDate.UTC()
	return q, nil
}

// ListPublished returns questions published at or before now, most recent
// first. A limit of zero or less returns every published question.
func (s *Store) ListPublished(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	query := `
		SELECT id, question_text, pub_date
		FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC, id DESC
	`
	args := []any{now.UTC()}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.PubDate = q.PubDate.UTC()

		// Keep the listing in lockstep with the detail lookup.
		if !q.Published(now) {
			continue
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	return questions, nil
}

// ListChoices returns a question's choices in creation order
func (s *Store) ListChoices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}

	return choices, nil
}
