package filter

import (
	"strings"

	"news_dashboard/internal/models"
)

// Apply filters articles by the AND of the spec's active predicates.
// Order is preserved and the input is never mutated; an empty spec
// returns a copy of the input.
func Apply(articles []models.Article, spec Spec) []models.Article {
	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if !matchSearch(a, spec.Search) {
			continue
		}
		if !matchAuthor(a.Author, spec.Author) {
			continue
		}
		if !matchType(a.Type, spec.Type) {
			continue
		}
		if !spec.InRange(a.PublishedAt) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ApplyPayouts filters payout rows by the same search/author/type rules
// applied to the row's author and type. An active date range does not
// drop rows by a single date: a row survives if any of its publish
// dates falls in range, and its count and payout are then recomputed
// from just the in-range subset.
func ApplyPayouts(rows []models.PayoutRow, spec Spec, rate float64) []models.PayoutRow {
	out := make([]models.PayoutRow, 0, len(rows))
	for _, row := range rows {
		if spec.Search != "" && !containsFold(row.Author, spec.Search) {
			continue
		}
		if !matchAuthor(row.Author, spec.Author) {
			continue
		}
		if !matchType(row.Type, spec.Type) {
			continue
		}

		if spec.HasDateRange() {
			var inRange int
			for _, d := range row.PublishedDates {
				if spec.InRange(d) {
					inRange++
				}
			}
			if inRange == 0 {
				continue
			}
			row.ArticleCount = inRange
			row.Payout = float64(inRange) * rate
		}
		out = append(out, row)
	}
	return out
}

func matchSearch(a models.Article, search string) bool {
	if search == "" {
		return true
	}
	return containsFold(a.Title, search) || containsFold(a.Author, search)
}

func matchAuthor(author, want string) bool {
	if want == "" {
		return true
	}
	return containsFold(author, want)
}

func matchType(got, want models.ContentType) bool {
	if want == "" || want == models.TypeAll {
		return true
	}
	return got == want
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
