package domain

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// EntityQuote names quotes in errors and change events.
const EntityQuote = "quote"

// CategoryAll is the filter value that matches every category.
const CategoryAll = "全部"

// SuggestedCategories are offered by the gallery UI. They are hints only;
// a quote may carry any free-text category.
var SuggestedCategories = []string{"心学", "儒家", "道家", "佛学", "兵法", "诗词", "其他"}

// quoteIDSuffixSpace bounds the random suffix appended to quote ids.
const quoteIDSuffixSpace = 36 * 36 * 36 * 36 * 36

// Quote is one entry of the wisdom gallery.
type Quote struct {
	ID       string `json:"id,omitempty"`
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Source   string `json:"source,omitempty"`
	Category string `json:"category,omitempty"`
}

// Normalize returns a copy with every text field trimmed.
func (q Quote) Normalize() Quote {
	return Quote{
		ID:       strings.TrimSpace(q.ID),
		Quote:    strings.TrimSpace(q.Quote),
		Author:   strings.TrimSpace(q.Author),
		Source:   strings.TrimSpace(q.Source),
		Category: strings.TrimSpace(q.Category),
	}
}

// Validate checks the required fields. Call it on a normalized quote.
func (q Quote) Validate() error {
	if q.Quote == "" {
		return NewValidationError("quote", "quote text is required")
	}

	if q.Author == "" {
		return NewValidationError("author", "author is required")
	}

	return nil
}

// SameText reports whether two quotes have the same text and author.
// Import uses it as the secondary duplicate key next to the id.
func (q Quote) SameText(other Quote) bool {
	return q.Quote == other.Quote && q.Author == other.Author
}

// NewQuoteID returns base36(unix millis) followed by a random base36 suffix.
// Collisions are improbable, not impossible; callers do not retry.
func NewQuoteID(now time.Time) string {
	suffix := rand.IntN(quoteIDSuffixSpace) //nolint:gosec // ids are not secrets
	return strconv.FormatInt(now.UnixMilli(), 36) + strconv.FormatInt(int64(suffix), 36)
}

// QuoteFilter selects quotes by category and free-text search.
type QuoteFilter struct {
	// Category must match exactly. Empty or CategoryAll matches everything.
	Category string

	// Search is matched case-insensitively against quote, author and source.
	Search string
}

// IsZero reports whether the filter matches every quote.
func (f QuoteFilter) IsZero() bool {
	return (f.Category == "" || f.Category == CategoryAll) && strings.TrimSpace(f.Search) == ""
}

// Matches reports whether q passes the filter.
func (f QuoteFilter) Matches(q Quote) bool {
	if f.Category != "" && f.Category != CategoryAll && q.Category != f.Category {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(q.Quote), term) ||
		strings.Contains(strings.ToLower(q.Author), term) ||
		strings.Contains(strings.ToLower(q.Source), term)
}

// Apply returns the quotes that pass the filter, preserving order.
// The result is always a fresh slice.
func (f QuoteFilter) Apply(quotes []Quote) []Quote {
	out := make([]Quote, 0, len(quotes))

	for _, q := range quotes {
		if f.Matches(q) {
			out = append(out, q)
		}
	}

	return out
}

// ImportResult reports the outcome of a quote import.
type ImportResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Invalid int `json:"invalid"`
}
