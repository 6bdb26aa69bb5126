// Package executive provides use cases for executive profiles.
package executive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
	"lawgan/internal/repository"
)

// Sentinel errors for executive use case operations.
var (
	// ErrExecutiveNotFound indicates that the requested executive was not found.
	ErrExecutiveNotFound = errors.New("executive not found")

	// ErrInvalidExecutiveID indicates that the provided executive ID is invalid.
	ErrInvalidExecutiveID = errors.New("invalid executive ID")

	// ErrNoFields indicates that an update request carried no updatable fields.
	ErrNoFields = errors.New("no fields provided to update")
)

// CreateInput represents the input parameters for adding an executive.
type CreateInput struct {
	Name     string
	Position string
	About    string
	Image    imageconv.Payload
}

// UpdateInput represents the input parameters for updating an executive.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID       int64
	Name     *string
	Position *string
	About    *string
	Image    imageconv.Payload
}

// Service provides executive profile use cases.
type Service struct {
	Repo repository.ExecutiveRepository
}

// List retrieves all executives ordered by name.
func (s *Service) List(ctx context.Context) ([]*entity.Executive, error) {
	executives, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list executives: %w", err)
	}
	return executives, nil
}

// Get retrieves a single executive by ID.
// Returns ErrInvalidExecutiveID for a non-positive ID and
// ErrExecutiveNotFound when the executive does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Executive, error) {
	if id <= 0 {
		return nil, ErrInvalidExecutiveID
	}
	exec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get executive: %w", err)
	}
	if exec == nil {
		return nil, ErrExecutiveNotFound
	}
	return exec, nil
}

// Create stores a new executive profile.
// Returns a ValidationError when the name is missing.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Executive, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}

	exec := &entity.Executive{
		Name:      strings.TrimSpace(in.Name),
		Position:  strings.TrimSpace(in.Position),
		About:     in.About,
		Image:     in.Image.Data,
		ImageMime: in.Image.Mime,
	}
	if err := s.Repo.Create(ctx, exec); err != nil {
		return nil, fmt.Errorf("create executive: %w", err)
	}
	return exec, nil
}

// Update modifies an existing executive profile.
// Only non-nil fields are updated; the image is replaced only when a new
// payload was provided. Returns ErrNoFields when nothing was provided.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Executive, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidExecutiveID
	}
	if in.Name == nil && in.Position == nil && in.About == nil && in.Image.Empty() {
		return nil, ErrNoFields
	}

	exec, err := s.Repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get executive: %w", err)
	}
	if exec == nil {
		return nil, ErrExecutiveNotFound
	}

	if in.Name != nil {
		exec.Name = strings.TrimSpace(*in.Name)
	}
	if in.Position != nil {
		exec.Position = strings.TrimSpace(*in.Position)
	}
	if in.About != nil {
		exec.About = *in.About
	}
	if !in.Image.Empty() {
		exec.Image = in.Image.Data
		exec.ImageMime = in.Image.Mime
	}

	if err := s.Repo.Update(ctx, exec); err != nil {
		return nil, fmt.Errorf("update executive: %w", err)
	}
	return exec, nil
}

// Delete removes an executive by ID.
// Returns ErrExecutiveNotFound when the executive does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidExecutiveID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrExecutiveNotFound
		}
		return fmt.Errorf("delete executive: %w", err)
	}
	return nil
}
