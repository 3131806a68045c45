package db

import (
	"database/sql"
	_ "embed"
)

//go:embed seeds/seed.sql
var seedSQL string

// MigrateUp creates the schema and loads seed data. Statements are idempotent
// so the migration can run at every startup.
func MigrateUp(pool *sql.DB) error {
	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS topics (
    slug        TEXT PRIMARY KEY,
    description TEXT NOT NULL
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS users (
    username   TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    avatar_url TEXT NOT NULL DEFAULT ''
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    article_id      SERIAL PRIMARY KEY,
    title           TEXT NOT NULL,
    topic           TEXT NOT NULL REFERENCES topics(slug),
    author          TEXT NOT NULL REFERENCES users(username),
    body            TEXT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
    votes           INT NOT NULL DEFAULT 0,
    article_img_url TEXT NOT NULL DEFAULT 'https://images.example.com/placeholder.jpg'
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS comments (
    comment_id SERIAL PRIMARY KEY,
    body       TEXT NOT NULL,
    article_id INT NOT NULL REFERENCES articles(article_id) ON DELETE CASCADE,
    author     TEXT NOT NULL REFERENCES users(username),
    votes      INT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// default list ordering
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		// topic filter
		`CREATE INDEX IF NOT EXISTS idx_articles_topic ON articles(topic)`,
		// comment_count aggregation and per-article comment listing
		`CREATE INDEX IF NOT EXISTS idx_comments_article_id ON comments(article_id)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments(created_at DESC)`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(idx); err != nil {
			return err
		}
	}

	if _, err := pool.Exec(seedSQL); err != nil {
		return err
	}

	return nil
}

// MigrateDown drops the schema in dependency order.
// Use with caution: this deletes all data.
func MigrateDown(pool *sql.DB) error {
	drops := []string{
		`DROP TABLE IF EXISTS comments`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS users`,
		`DROP TABLE IF EXISTS topics`,
	}
	for _, stmt := range drops {
		if _, err := pool.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
