package fetcher

import (
	"time"

	"news_dashboard/internal/logger"
	"news_dashboard/internal/models"
)

const (
	defaultNewsSource = "Currents API"
	blogSourceName    = "dev.to"
)

// newsDateLayouts covers the date formats the news API has been seen
// returning.
var newsDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
}

// NormalizeNews maps the news API payload onto canonical articles.
// A missing author becomes "Unknown", a missing description becomes the
// empty string. Runs only on already-successful payloads; transport
// failures never reach this point.
func NormalizeNews(items []models.NewsAPIArticle) []models.Article {
	articles := make([]models.Article, 0, len(items))
	for _, item := range items {
		author := item.Author
		if author == "" {
			author = "Unknown"
		}
		source := item.Source
		if source == "" {
			source = defaultNewsSource
		}
		articles = append(articles, models.Article{
			Title:       item.Title,
			Author:      author,
			PublishedAt: parseDate(SourceNews, item.Published),
			Description: item.Description,
			URL:         item.URL,
			SourceName:  source,
			Type:        models.TypeNews,
		})
	}
	return articles
}

// NormalizeBlog maps the blog API payload onto canonical articles.
func NormalizeBlog(items []models.BlogArticle) []models.Article {
	articles := make([]models.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, models.Article{
			Title:       item.Title,
			Author:      item.User.Name,
			PublishedAt: parseDate(SourceBlog, item.PublishedAt),
			Description: item.Description,
			URL:         item.URL,
			SourceName:  blogSourceName,
			Type:        models.TypeBlog,
		})
	}
	return articles
}

// parseDate tries the known layouts and falls back to the zero time,
// which any active date filter treats as out of range. The article
// itself is kept.
func parseDate(source, value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range newsDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	logger.WithSource(source).Warnf("Failed to parse date '%s'", value)
	return time.Time{}
}
