package payout_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"news_dashboard/internal/models"
	"news_dashboard/internal/payout"
)

func date(day int) time.Time {
	return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
}

func TestAggregate_GroupsAcrossTypes(t *testing.T) {
	articles := []models.Article{
		{Author: "Ann", Type: models.TypeNews, PublishedAt: date(10)},
		{Author: "Ann", Type: models.TypeBlog, PublishedAt: date(12)},
		{Author: "", Type: models.TypeNews, PublishedAt: date(11)},
	}

	rows := payout.Aggregate(articles, 10)

	require.Len(t, rows, 1)
	require.Equal(t, "Ann", rows[0].Author)
	require.Equal(t, 2, rows[0].ArticleCount)
	require.Equal(t, 20.0, rows[0].Payout)
	// Last grouped article wins the type.
	require.Equal(t, models.TypeBlog, rows[0].Type)
	require.Equal(t, []time.Time{date(10), date(12)}, rows[0].PublishedDates)
}

func TestAggregate_SkipsPlaceholderAuthors(t *testing.T) {
	articles := []models.Article{
		{Author: "", Type: models.TypeNews},
		{Author: "null", Type: models.TypeNews},
		{Author: "undefined", Type: models.TypeBlog},
		{Author: "Unknown", Type: models.TypeNews},
	}

	rows := payout.Aggregate(articles, 5)

	// "Unknown" is a real fallback author, not a placeholder.
	require.Len(t, rows, 1)
	require.Equal(t, "Unknown", rows[0].Author)
}

func TestAggregate_IsAPartition(t *testing.T) {
	articles := []models.Article{
		{Author: "Ann", Type: models.TypeNews},
		{Author: "Boris", Type: models.TypeBlog},
		{Author: "Ann", Type: models.TypeNews},
		{Author: "null", Type: models.TypeNews},
		{Author: "Clara", Type: models.TypeBlog},
		{Author: "", Type: models.TypeBlog},
	}

	rows := payout.Aggregate(articles, 7)

	var counted int
	for _, row := range rows {
		counted += row.ArticleCount
	}
	require.Equal(t, 4, counted)
}

func TestAggregate_SortsByPayoutDescending(t *testing.T) {
	articles := []models.Article{
		{Author: "Solo", Type: models.TypeNews},
		{Author: "Prolific", Type: models.TypeBlog},
		{Author: "Prolific", Type: models.TypeBlog},
		{Author: "Prolific", Type: models.TypeBlog},
		{Author: "Pair", Type: models.TypeNews},
		{Author: "Pair", Type: models.TypeNews},
	}

	rows := payout.Aggregate(articles, 10)

	require.Equal(t, []string{"Prolific", "Pair", "Solo"}, []string{rows[0].Author, rows[1].Author, rows[2].Author})
}

func TestAggregate_TiesKeepEncounterOrder(t *testing.T) {
	articles := []models.Article{
		{Author: "First", Type: models.TypeNews},
		{Author: "Second", Type: models.TypeNews},
		{Author: "Third", Type: models.TypeNews},
	}

	rows := payout.Aggregate(articles, 10)

	require.Equal(t, "First", rows[0].Author)
	require.Equal(t, "Second", rows[1].Author)
	require.Equal(t, "Third", rows[2].Author)
}

func TestTotal(t *testing.T) {
	rows := []models.PayoutRow{
		{Payout: 30},
		{Payout: 12.5},
	}
	require.Equal(t, 42.5, payout.Total(rows))
	require.Equal(t, 0.0, payout.Total(nil))
}
