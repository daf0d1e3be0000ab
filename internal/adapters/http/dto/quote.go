package dto

import "github.com/jsamuelsen/portfolio-service/internal/domain"

// QuoteRequest is the body of POST and PUT /api/v1/quotes.
type QuoteRequest struct {
	ID       string `json:"id"       validate:"max=64"`
	Quote    string `json:"quote"    validate:"required,notempty,max=2000"`
	Author   string `json:"author"   validate:"required,notempty,max=200"`
	Source   string `json:"source"   validate:"max=200"`
	Category string `json:"category" validate:"max=50"`
}

// ToDomain converts the request. The service trims and revalidates it.
func (r QuoteRequest) ToDomain() domain.Quote {
	return domain.Quote{
		ID:       r.ID,
		Quote:    r.Quote,
		Author:   r.Author,
		Source:   r.Source,
		Category: r.Category,
	}
}

// QuoteQuery holds the list and export filters.
type QuoteQuery struct {
	Category string `form:"category" validate:"max=50"`
	Search   string `form:"q"        validate:"max=200"`
}

// ToFilter converts the query to a domain filter.
func (q QuoteQuery) ToFilter() domain.QuoteFilter {
	return domain.QuoteFilter{Category: q.Category, Search: q.Search}
}

// QuoteListResponse is the body of GET /api/v1/quotes.
type QuoteListResponse struct {
	Items []domain.Quote `json:"items"`
	Count int            `json:"count"`
}

// NewQuoteListResponse wraps items, never encoding a null list.
func NewQuoteListResponse(items []domain.Quote) QuoteListResponse {
	if items == nil {
		items = []domain.Quote{}
	}

	return QuoteListResponse{Items: items, Count: len(items)}
}

// CategoriesResponse is the body of GET /api/v1/quotes/categories.
type CategoriesResponse struct {
	// All is the sentinel the page uses for "no category filter".
	All        string   `json:"all"`
	Suggested  []string `json:"suggested"`
	Categories []string `json:"categories"`
}
