package filter

import (
	"errors"
	"time"

	"news_dashboard/internal/models"
)

// Spec is the committed set of filter predicates shared by the news and
// payout views. The zero date bounds mean an open range.
type Spec struct {
	Search string             `json:"search"`
	Author string             `json:"author"`
	Type   models.ContentType `json:"type"`
	From   *time.Time         `json:"from,omitempty"`
	To     *time.Time         `json:"to,omitempty"`
}

// DefaultSpec returns the empty spec: no search, no author, all types,
// open date range.
func DefaultSpec() Spec {
	return Spec{Type: models.TypeAll}
}

// HasDateRange reports whether either bound is set.
func (s Spec) HasDateRange() bool {
	return s.From != nil || s.To != nil
}

// InRange reports whether t falls within [From, To], treating an absent
// bound as open. A zero t marks an unparseable source date and fails
// any active range instead of panicking somewhere downstream.
func (s Spec) InRange(t time.Time) bool {
	if !s.HasDateRange() {
		return true
	}
	if t.IsZero() {
		return false
	}
	if s.From != nil && t.Before(*s.From) {
		return false
	}
	if s.To != nil && t.After(*s.To) {
		return false
	}
	return true
}

// Validation failures surfaced to the filter editor before commit.
// They never reach the committed store.
var (
	ErrSearchTooShort  = errors.New("search term must be at least 2 characters")
	ErrIncompleteRange = errors.New("select both start and end dates")
	ErrRangeInverted   = errors.New("start date cannot be after end date")
	ErrFutureDate      = errors.New("cannot select future dates")
	ErrDateTooOld      = errors.New("free API access only allows articles from the past month")
)

// Validate checks a staged spec before it may be committed. The store
// itself never validates; a spec that fails here is simply not applied.
func (s Spec) Validate() error {
	if s.Search != "" && len([]rune(s.Search)) < 2 {
		return ErrSearchTooShort
	}
	if s.From != nil && s.To == nil {
		return ErrIncompleteRange
	}
	if s.From != nil && s.To != nil && s.From.After(*s.To) {
		return ErrRangeInverted
	}

	now := time.Now()
	monthAgo := now.AddDate(0, -1, 0)
	for _, bound := range []*time.Time{s.From, s.To} {
		if bound == nil {
			continue
		}
		if bound.After(now) {
			return ErrFutureDate
		}
		if bound.Before(monthAgo) {
			return ErrDateTooOld
		}
	}
	return nil
}
