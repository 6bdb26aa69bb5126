// Package quote provides use cases for rotating pull quotes.
// The number of stored quotes is capped so the front page rotation
// stays bounded.
package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lawgan/internal/domain/entity"
	"lawgan/internal/repository"
)

// Sentinel errors for quote use case operations.
var (
	// ErrQuoteNotFound indicates that the requested quote was not found.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrInvalidQuoteID indicates that the provided quote ID is invalid.
	ErrInvalidQuoteID = errors.New("invalid quote ID")

	// ErrQuoteLimit indicates that the stored quote cap has been reached.
	ErrQuoteLimit = errors.New("quote limit reached")

	// ErrNoFields indicates that an update request carried no updatable fields.
	ErrNoFields = errors.New("no fields provided to update")
)

// CreateInput represents the input parameters for publishing a quote.
type CreateInput struct {
	Title  string
	Author string
}

// UpdateInput represents the input parameters for updating a quote.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID     int64
	Title  *string
	Author *string
}

// Service provides quote management use cases.
type Service struct {
	Repo repository.QuoteRepository
}

// List retrieves all quotes, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.Quote, error) {
	quotes, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

// Get retrieves a single quote by ID.
// Returns ErrInvalidQuoteID for a non-positive ID and ErrQuoteNotFound
// when the quote does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Quote, error) {
	if id <= 0 {
		return nil, ErrInvalidQuoteID
	}
	q, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	if q == nil {
		return nil, ErrQuoteNotFound
	}
	return q, nil
}

// Create stores a new quote.
// Returns a ValidationError when title or author is missing and
// ErrQuoteLimit when entity.MaxQuotes quotes are already stored.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Quote, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Author == "" {
		return nil, &entity.ValidationError{Field: "author", Message: "is required"}
	}

	count, err := s.Repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count quotes: %w", err)
	}
	if count >= entity.MaxQuotes {
		return nil, ErrQuoteLimit
	}

	q := &entity.Quote{
		Title:  strings.TrimSpace(in.Title),
		Author: strings.TrimSpace(in.Author),
	}
	if err := s.Repo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}
	return q, nil
}

// Update modifies an existing quote.
// Only non-nil fields are updated. Returns ErrNoFields when nothing was
// provided and ErrQuoteNotFound when the quote does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Quote, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidQuoteID
	}
	if in.Title == nil && in.Author == nil {
		return nil, ErrNoFields
	}

	q, err := s.Repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	if q == nil {
		return nil, ErrQuoteNotFound
	}

	if in.Title != nil {
		q.Title = strings.TrimSpace(*in.Title)
	}
	if in.Author != nil {
		q.Author = strings.TrimSpace(*in.Author)
	}

	if err := s.Repo.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("update quote: %w", err)
	}
	return q, nil
}

// Delete removes a quote by ID.
// Returns ErrQuoteNotFound when the quote does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidQuoteID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrQuoteNotFound
		}
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}
