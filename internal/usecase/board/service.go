// Package board provides use cases for editorial board members.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
	"lawgan/internal/repository"
)

// Sentinel errors for board member use case operations.
var (
	// ErrMemberNotFound indicates that the requested board member was not found.
	ErrMemberNotFound = errors.New("board member not found")

	// ErrInvalidMemberID indicates that the provided member ID is invalid.
	ErrInvalidMemberID = errors.New("invalid board member ID")

	// ErrNoFields indicates that an update request carried no updatable fields.
	ErrNoFields = errors.New("no fields provided to update")
)

// CreateInput represents the input parameters for adding a board member.
type CreateInput struct {
	Name  string
	About string
	Image imageconv.Payload
}

// UpdateInput represents the input parameters for updating a board member.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID    int64
	Name  *string
	About *string
	Image imageconv.Payload
}

// Service provides editorial board member use cases.
type Service struct {
	Repo repository.BoardMemberRepository
}

// List retrieves all board members ordered by name.
func (s *Service) List(ctx context.Context) ([]*entity.BoardMember, error) {
	members, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list board members: %w", err)
	}
	return members, nil
}

// Get retrieves a single board member by ID.
// Returns ErrInvalidMemberID for a non-positive ID and ErrMemberNotFound
// when the member does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.BoardMember, error) {
	if id <= 0 {
		return nil, ErrInvalidMemberID
	}
	member, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get board member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// Create stores a new board member.
// Returns a ValidationError when the name is missing.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.BoardMember, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}

	member := &entity.BoardMember{
		Name:      strings.TrimSpace(in.Name),
		About:     in.About,
		Image:     in.Image.Data,
		ImageMime: in.Image.Mime,
	}
	if err := s.Repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create board member: %w", err)
	}
	return member, nil
}

// Update modifies an existing board member.
// Only non-nil fields are updated; the image is replaced only when a new
// payload was provided. Returns ErrNoFields when nothing was provided.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.BoardMember, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidMemberID
	}
	if in.Name == nil && in.About == nil && in.Image.Empty() {
		return nil, ErrNoFields
	}

	member, err := s.Repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get board member: %w", err)
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	if in.Name != nil {
		member.Name = strings.TrimSpace(*in.Name)
	}
	if in.About != nil {
		member.About = *in.About
	}
	if !in.Image.Empty() {
		member.Image = in.Image.Data
		member.ImageMime = in.Image.Mime
	}

	if err := s.Repo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update board member: %w", err)
	}
	return member, nil
}

// Delete removes a board member by ID.
// Returns ErrMemberNotFound when the member does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidMemberID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("delete board member: %w", err)
	}
	return nil
}
