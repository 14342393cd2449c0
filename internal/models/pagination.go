package models

// PaginationResponse describes the page bounds of a view response.
type PaginationResponse struct {
	TotalItems   int `json:"total_items"`
	TotalPages   int `json:"total_pages"`
	CurrentPage  int `json:"current_page"`
	ItemsPerPage int `json:"items_per_page"`
}

// ArticlesResponse is the news view payload: one page of filtered
// articles plus the totals shown in the view header.
type ArticlesResponse struct {
	Items         []Article          `json:"items"`
	TotalArticles int                `json:"total_articles"`
	NewsCount     int                `json:"news_count"`
	BlogCount     int                `json:"blog_count"`
	Errors        []SourceError      `json:"errors,omitempty"`
	Pagination    PaginationResponse `json:"pagination"`
}

// PayoutsResponse is the payout view payload: one page of payout rows
// plus the total payout across all filtered rows.
type PayoutsResponse struct {
	Items       []PayoutRow        `json:"items"`
	TotalPayout float64            `json:"total_payout"`
	Rate        float64            `json:"rate"`
	Errors      []SourceError      `json:"errors,omitempty"`
	Pagination  PaginationResponse `json:"pagination"`
}

// AuthorCount is one entry of the top-authors distribution table.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}
