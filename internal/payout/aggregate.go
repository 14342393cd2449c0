package payout

import (
	"sort"

	"news_dashboard/internal/models"
)

// Aggregate groups articles by exact author and derives one payout row
// per author: article count, count times rate, the content type of the
// author's last grouped article, and every publish date in insertion
// order. Placeholder authors are skipped entirely. Rows come back
// sorted by payout descending; ties keep the order in which the authors
// were first encountered.
func Aggregate(articles []models.Article, rate float64) []models.PayoutRow {
	index := make(map[string]int)
	rows := make([]models.PayoutRow, 0)

	for _, a := range articles {
		if !a.HasAuthor() {
			continue
		}
		i, ok := index[a.Author]
		if !ok {
			i = len(rows)
			index[a.Author] = i
			rows = append(rows, models.PayoutRow{Author: a.Author})
		}
		rows[i].ArticleCount++
		rows[i].Payout = float64(rows[i].ArticleCount) * rate
		rows[i].Type = a.Type
		rows[i].PublishedDates = append(rows[i].PublishedDates, a.PublishedAt)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Payout > rows[j].Payout
	})
	return rows
}

// Total sums the payout over all rows.
func Total(rows []models.PayoutRow) float64 {
	var sum float64
	for _, row := range rows {
		sum += row.Payout
	}
	return sum
}
