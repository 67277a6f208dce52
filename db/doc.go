// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation, and question storage.

# Connecting

Open accepts "sqlite" (modernc.org/sqlite) or "postgres" (github.com/lib/pq):

	conn, err := db.Open(db.DriverSQLite, "file:polls.db")

# Schema Creation

CreateSchema initializes all required tables for the given database type:

	if err := db.CreateSchema(conn, db.DriverSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: question_text and pub_date
  - choice: choice_text and votes per question

	question 1──* choice

Foreign keys use ON DELETE CASCADE.

# Store

Store wraps the connection:

	store := db.NewStore(conn)
	q, err := store.CreateQuestion(ctx, "What's new?", time.Now())
	q, err = store.GetQuestion(ctx, q.ID)            // db.ErrNotFound if missing
	list, err := store.ListPublished(ctx, now, 5)    // pub_date <= now, newest first
	choices, err := store.ListChoices(ctx, q.ID)

GetQuestion ignores pub dates; callers decide visibility with
models.Question.Published. ListPublished applies the same predicate to every
row it returns.

# Fixtures

Seed loads a JSON array of questions dated relative to now:

	[{"question_text": "Past question", "days": -30, "choices": ["Yes", "No"]}]
*/
package db
