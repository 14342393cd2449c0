package models

// Source payload schemas. Each upstream keeps its own explicit shape so
// schema drift fails at the decoding boundary, not inside aggregation.

// NewsAPIResponse is the envelope returned by the news API search endpoint.
type NewsAPIResponse struct {
	Status string           `json:"status"`
	News   []NewsAPIArticle `json:"news"`
}

// NewsAPIArticle is a single item of the news API payload.
// Author and description may be empty or absent.
type NewsAPIArticle struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Published   string `json:"published"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
}

// BlogArticle is a single item of the blog API payload, which returns a
// bare JSON array.
type BlogArticle struct {
	Title       string   `json:"title"`
	User        BlogUser `json:"user"`
	PublishedAt string   `json:"published_at"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
}

// BlogUser carries the nested author record of a blog article.
type BlogUser struct {
	Name string `json:"name"`
}
