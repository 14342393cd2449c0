package models

import "time"

// PayoutRow is a derived per-author record, recomputed in full on every
// fetch or rate change and never mutated incrementally.
type PayoutRow struct {
	Author       string  `json:"author"`
	ArticleCount int     `json:"articles"`
	Payout       float64 `json:"payout"`
	// Type is the content type of the author's most recently grouped
	// article. An author publishing under both types collapses to the
	// last one seen; kept from the source behavior.
	Type           ContentType `json:"type"`
	PublishedDates []time.Time `json:"published_dates"`
}

// ExportRow is the flat shape handed to CSV/PDF export consumers.
type ExportRow struct {
	Author          string      `json:"author"`
	Articles        int         `json:"articles"`
	Rate            float64     `json:"rate"`
	Type            ContentType `json:"type"`
	LastArticleDate time.Time   `json:"last_article_date"`
	Total           float64     `json:"total"`
}

// ErrorKind classifies an upstream fetch failure.
type ErrorKind string

const (
	ErrTimeout      ErrorKind = "timeout"
	ErrRateLimited  ErrorKind = "rate_limited"
	ErrUnauthorized ErrorKind = "unauthorized"
	ErrGeneric      ErrorKind = "generic_failure"
)

// SourceError is a per-source fetch failure reported to the views.
// Failures are values here, never propagated as panics or fatal errors.
type SourceError struct {
	Source  string    `json:"source"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}
