package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"news_dashboard/internal/models"
)

const rateKey = "payout_rate"

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS articles (
	url          TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	author       TEXT NOT NULL DEFAULT '',
	published_at TIMESTAMP,
	description  TEXT NOT NULL DEFAULT '',
	source_name  TEXT NOT NULL DEFAULT '',
	type         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_at DESC);
`

// Store wraps the local SQLite database holding the persisted payout
// rate and the article cache. This is the service's only durable state.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetRate loads the persisted payout rate. ok is false when no rate has
// ever been saved.
func (s *Store) GetRate(ctx context.Context) (rate float64, ok bool, err error) {
	var value string
	err = s.db.GetContext(ctx, &value, `SELECT value FROM settings WHERE key = ?`, rateKey)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	rate, err = strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt rate setting %q: %w", value, err)
	}
	return rate, true, nil
}

// SetRate persists the payout rate, overwriting any previous value.
func (s *Store) SetRate(ctx context.Context, rate float64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, rateKey, strconv.FormatFloat(rate, 'f', -1, 64))
	return err
}

// SaveArticles replaces the article cache with the given set.
func (s *Store) SaveArticles(ctx context.Context, articles []models.Article) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM articles`); err != nil {
		return err
	}
	for _, a := range articles {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO articles (url, title, author, published_at, description, source_name, type)
			VALUES (:url, :title, :author, :published_at, :description, :source_name, :type)
			ON CONFLICT (url) DO UPDATE SET
				title = excluded.title,
				author = excluded.author,
				published_at = excluded.published_at,
				description = excluded.description,
				source_name = excluded.source_name,
				type = excluded.type
		`, a)
		if err != nil {
			return fmt.Errorf("caching article %s: %w", a.URL, err)
		}
	}
	return tx.Commit()
}

// CachedArticles returns the cached set, newest first.
func (s *Store) CachedArticles(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.SelectContext(ctx, &articles, `
		SELECT url, title, author, published_at, description, source_name, type
		FROM articles
		ORDER BY published_at DESC
	`)
	return articles, err
}
