// Package entity defines the core domain entities and validation logic for the application.
// It contains the content types managed by the publishing API (articles, board members,
// executives, advertisements, quotes, admin accounts) along with their normalization
// rules and domain-specific errors.
package entity

import "time"

// Article categories form a fixed set. Requests carrying anything else are rejected.
const (
	CategoryLaw            = "law"
	CategoryPolitics       = "politics"
	CategoryForeignAffairs = "foreign affairs"
	CategoryReviews        = "reviews"
)

// AllowedCategories lists every valid article category.
var AllowedCategories = []string{
	CategoryLaw,
	CategoryPolitics,
	CategoryForeignAffairs,
	CategoryReviews,
}

var allowedCategorySet = map[string]struct{}{
	CategoryLaw:            {},
	CategoryPolitics:       {},
	CategoryForeignAffairs: {},
	CategoryReviews:        {},
}

// ValidCategory reports whether category belongs to the fixed category set.
// The input is expected to be normalized already (see NormalizeCategory).
func ValidCategory(category string) bool {
	_, ok := allowedCategorySet[category]
	return ok
}

// Article represents a published news article.
// The slug is a unique, URL-safe alternate key to the numeric id.
type Article struct {
	ID         int64
	Title      string
	Slug       string
	Summary    string
	Content    string
	Category   string
	IsBreaking bool
	Published  bool
	Author     string
	Image      []byte
	ImageMime  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
