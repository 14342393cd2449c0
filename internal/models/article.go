package models

import "time"

// ContentType distinguishes the two upstream sources.
type ContentType string

const (
	TypeNews ContentType = "news"
	TypeBlog ContentType = "blog"
	// TypeAll is only valid inside a filter spec, never on an article.
	TypeAll ContentType = "all"
)

// Article is the canonical, source-agnostic article record used by
// filtering, aggregation and both dashboard views.
// A zero PublishedAt marks a source date that could not be parsed.
type Article struct {
	Title       string      `json:"title" db:"title"`
	Author      string      `json:"author" db:"author"`
	PublishedAt time.Time   `json:"published_at" db:"published_at"`
	Description string      `json:"description" db:"description"`
	URL         string      `json:"url" db:"url"`
	SourceName  string      `json:"source_name" db:"source_name"`
	Type        ContentType `json:"type" db:"type"`
}

// HasAuthor reports whether the article carries a usable author value.
// Empty strings and the literal "null"/"undefined" leak through some
// upstream payloads and are treated as absent.
func (a Article) HasAuthor() bool {
	return !IsPlaceholderAuthor(a.Author)
}

// IsPlaceholderAuthor reports whether an author value should be treated
// as absent for aggregation and visualization purposes.
func IsPlaceholderAuthor(author string) bool {
	switch author {
	case "", "null", "undefined":
		return true
	}
	return false
}
