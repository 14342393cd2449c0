package fetcher_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"news_dashboard/internal/fetcher"
	"news_dashboard/internal/models"
)

func TestNormalizeNews(t *testing.T) {
	items := []models.NewsAPIArticle{
		{
			Title:       "Tech roundup",
			Author:      "Ann",
			Published:   "2024-01-10 08:30:00 +0000",
			Description: "The week in tech",
			URL:         "https://example.com/roundup",
			Source:      "Example Wire",
		},
		{
			Title:     "Anonymous report",
			Published: "2024-01-11T09:00:00Z",
			URL:       "https://example.com/report",
		},
	}

	got := fetcher.NormalizeNews(items)

	require.Len(t, got, 2)
	require.Equal(t, models.Article{
		Title:       "Tech roundup",
		Author:      "Ann",
		PublishedAt: time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC),
		Description: "The week in tech",
		URL:         "https://example.com/roundup",
		SourceName:  "Example Wire",
		Type:        models.TypeNews,
	}, got[0])

	// Missing author and source fall back; description stays empty.
	require.Equal(t, "Unknown", got[1].Author)
	require.Equal(t, "Currents API", got[1].SourceName)
	require.Equal(t, "", got[1].Description)
	require.Equal(t, models.TypeNews, got[1].Type)
}

func TestNormalizeNews_UnparseableDateKeptWithZeroTime(t *testing.T) {
	got := fetcher.NormalizeNews([]models.NewsAPIArticle{
		{Title: "Bad date", Author: "Ann", Published: "last tuesday"},
	})

	require.Len(t, got, 1)
	require.True(t, got[0].PublishedAt.IsZero())
}

func TestNormalizeBlog(t *testing.T) {
	items := []models.BlogArticle{
		{
			Title:       "Writing a lexer",
			User:        models.BlogUser{Name: "Boris"},
			PublishedAt: "2024-01-12T10:00:00Z",
			Description: "Part one",
			URL:         "https://dev.to/boris/lexer",
		},
	}

	got := fetcher.NormalizeBlog(items)

	require.Len(t, got, 1)
	require.Equal(t, "Boris", got[0].Author)
	require.Equal(t, "dev.to", got[0].SourceName)
	require.Equal(t, models.TypeBlog, got[0].Type)
	require.Equal(t, time.Date(2024, 1, 12, 10, 0, 0, 0, time.UTC), got[0].PublishedAt)
}
