// Package article provides use cases for managing news articles.
// It implements business logic for publishing, editing, deleting, and querying
// articles, including slug and category normalization and uniqueness checks.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrSlugTaken indicates that an article with the same slug already exists.
	ErrSlugTaken = errors.New("slug already in use")

	// ErrNoFields indicates that an edit request carried no updatable fields.
	ErrNoFields = errors.New("no fields provided to update")
)
