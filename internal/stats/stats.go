package stats

import (
	"sort"

	"news_dashboard/internal/models"
)

// TopAuthors reduces articles to a ranked author frequency table for
// the distribution chart: placeholder authors excluded, counts
// descending with ties in first-encounter order, truncated to limit.
func TopAuthors(articles []models.Article, limit int) []models.AuthorCount {
	index := make(map[string]int)
	counts := make([]models.AuthorCount, 0)

	for _, a := range articles {
		if !a.HasAuthor() {
			continue
		}
		i, ok := index[a.Author]
		if !ok {
			i = len(counts)
			index[a.Author] = i
			counts = append(counts, models.AuthorCount{Author: a.Author})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
