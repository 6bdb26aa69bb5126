// Package advertisement provides use cases for advertisement placements.
package advertisement

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
	"lawgan/internal/repository"
)

// Sentinel errors for advertisement use case operations.
var (
	// ErrAdNotFound indicates that the requested advertisement was not found.
	ErrAdNotFound = errors.New("advertisement not found")

	// ErrInvalidAdID indicates that the provided advertisement ID is invalid.
	ErrInvalidAdID = errors.New("invalid advertisement ID")

	// ErrNoFields indicates that an update request carried no updatable fields.
	ErrNoFields = errors.New("no fields provided to update")
)

// CreateInput represents the input parameters for placing an advertisement.
type CreateInput struct {
	Image imageconv.Payload
	URL   string
	Owner string
	Page  string
}

// UpdateInput represents the input parameters for updating an advertisement.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID    int64
	Image imageconv.Payload
	URL   *string
	Owner *string
	Page  *string
}

// Service provides advertisement use cases.
type Service struct {
	Repo repository.AdvertisementRepository
}

// List retrieves all advertisements, newest first.
func (s *Service) List(ctx context.Context) ([]*entity.Advertisement, error) {
	ads, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list advertisements: %w", err)
	}
	return ads, nil
}

// ListByPage retrieves advertisements assigned to the given page slot.
func (s *Service) ListByPage(ctx context.Context, page string) ([]*entity.Advertisement, error) {
	ads, err := s.Repo.ListByPage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list advertisements by page: %w", err)
	}
	return ads, nil
}

// Get retrieves a single advertisement by ID.
// Returns ErrInvalidAdID for a non-positive ID and ErrAdNotFound when the
// advertisement does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Advertisement, error) {
	if id <= 0 {
		return nil, ErrInvalidAdID
	}
	ad, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get advertisement: %w", err)
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}
	return ad, nil
}

// Create stores a new advertisement.
// Returns a ValidationError when the image payload is missing.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Advertisement, error) {
	if in.Image.Empty() {
		return nil, &entity.ValidationError{Field: "image", Message: "is required"}
	}

	ad := &entity.Advertisement{
		Image:     in.Image.Data,
		ImageMime: in.Image.Mime,
		URL:       strings.TrimSpace(in.URL),
		Owner:     strings.TrimSpace(in.Owner),
		Page:      strings.TrimSpace(in.Page),
	}
	if err := s.Repo.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("create advertisement: %w", err)
	}
	return ad, nil
}

// Update modifies an existing advertisement.
// Only non-nil fields are updated; the image is replaced only when a new
// payload was provided. Returns ErrNoFields when nothing was provided.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Advertisement, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidAdID
	}
	if in.Image.Empty() && in.URL == nil && in.Owner == nil && in.Page == nil {
		return nil, ErrNoFields
	}

	ad, err := s.Repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get advertisement: %w", err)
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}

	if !in.Image.Empty() {
		ad.Image = in.Image.Data
		ad.ImageMime = in.Image.Mime
	}
	if in.URL != nil {
		ad.URL = strings.TrimSpace(*in.URL)
	}
	if in.Owner != nil {
		ad.Owner = strings.TrimSpace(*in.Owner)
	}
	if in.Page != nil {
		ad.Page = strings.TrimSpace(*in.Page)
	}

	if err := s.Repo.Update(ctx, ad); err != nil {
		return nil, fmt.Errorf("update advertisement: %w", err)
	}
	return ad, nil
}

// Delete removes an advertisement by ID.
// Returns ErrAdNotFound when the advertisement does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAdID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrAdNotFound
		}
		return fmt.Errorf("delete advertisement: %w", err)
	}
	return nil
}
