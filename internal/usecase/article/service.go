package article

import (
	"context"
	"errors"
	"fmt"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
	"lawgan/internal/repository"
)

// PublishInput represents the input parameters for publishing a new article.
type PublishInput struct {
	Title      string
	Slug       string
	Summary    string
	Content    string
	Category   string
	IsBreaking bool
	Published  *bool
	Author     string
	Image      imageconv.Payload
}

// EditInput represents the input parameters for editing an existing article.
// The article is looked up by ID when ID is positive, otherwise by SlugKey.
// Fields with nil values will not be updated.
type EditInput struct {
	ID      int64
	SlugKey string

	Title      *string
	Slug       *string
	Summary    *string
	Content    *string
	Category   *string
	IsBreaking *bool
	Published  *bool
	Author     *string
	Image      imageconv.Payload
}

func (in EditInput) empty() bool {
	return in.Title == nil && in.Slug == nil && in.Summary == nil &&
		in.Content == nil && in.Category == nil && in.IsBreaking == nil &&
		in.Published == nil && in.Author == nil && in.Image.Empty()
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves all articles ordered newest first.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListByCategory retrieves articles in the given category, newest first.
// The category is normalized before matching, so "foreign-affairs" and
// "Foreign Affairs" select the same rows. Unknown categories yield an
// empty list rather than an error.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]*entity.Article, error) {
	articles, err := s.Repo.ListByCategory(ctx, entity.NormalizeCategory(category))
	if err != nil {
		return nil, fmt.Errorf("list articles by category: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// GetBySlug retrieves a single article by its normalized slug.
// Returns ErrArticleNotFound if no article carries the slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := s.Repo.GetBySlug(ctx, entity.NormalizeSlug(slug))
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Publish validates and stores a new article.
// Returns a ValidationError when a required field is missing,
// entity.ErrInvalidCategory for a category outside the allowed set,
// and ErrSlugTaken when the normalized slug is already in use.
func (s *Service) Publish(ctx context.Context, in PublishInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Slug == "" {
		return nil, &entity.ValidationError{Field: "slug", Message: "is required"}
	}
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if in.Category == "" {
		return nil, &entity.ValidationError{Field: "category", Message: "is required"}
	}

	category := entity.NormalizeCategory(in.Category)
	if !entity.ValidCategory(category) {
		return nil, entity.ErrInvalidCategory
	}

	slug := entity.NormalizeSlug(in.Slug)
	taken, err := s.Repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	published := true
	if in.Published != nil {
		published = *in.Published
	}

	art := &entity.Article{
		Title:      in.Title,
		Slug:       slug,
		Summary:    in.Summary,
		Content:    in.Content,
		Category:   category,
		IsBreaking: in.IsBreaking,
		Published:  published,
		Author:     in.Author,
		Image:      in.Image.Data,
		ImageMime:  in.Image.Mime,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Edit modifies an existing article with the provided input.
// Only non-nil fields are updated; a nil field keeps the stored value.
// Returns ErrNoFields when nothing was provided, ErrArticleNotFound when
// the lookup key matches no article, ErrSlugTaken when the new slug
// collides with another article, and entity.ErrInvalidCategory for an
// unknown category.
func (s *Service) Edit(ctx context.Context, in EditInput) (*entity.Article, error) {
	if in.empty() {
		return nil, ErrNoFields
	}

	art, err := s.lookup(ctx, in.ID, in.SlugKey)
	if err != nil {
		return nil, err
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.Title != nil {
		art.Title = *in.Title
	}
	if in.Slug != nil {
		slug := entity.NormalizeSlug(*in.Slug)
		if slug != art.Slug {
			taken, err := s.Repo.ExistsBySlug(ctx, slug)
			if err != nil {
				return nil, fmt.Errorf("check slug: %w", err)
			}
			if taken {
				return nil, ErrSlugTaken
			}
		}
		art.Slug = slug
	}
	if in.Summary != nil {
		art.Summary = *in.Summary
	}
	if in.Content != nil {
		art.Content = *in.Content
	}
	if in.Category != nil {
		category := entity.NormalizeCategory(*in.Category)
		if !entity.ValidCategory(category) {
			return nil, entity.ErrInvalidCategory
		}
		art.Category = category
	}
	if in.IsBreaking != nil {
		art.IsBreaking = *in.IsBreaking
	}
	if in.Published != nil {
		art.Published = *in.Published
	}
	if in.Author != nil {
		art.Author = *in.Author
	}
	if !in.Image.Empty() {
		art.Image = in.Image.Data
		art.ImageMime = in.Image.Mime
	}

	if err := s.Repo.Update(ctx, art); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// lookup resolves an article by ID when id is positive, otherwise by slug.
func (s *Service) lookup(ctx context.Context, id int64, slug string) (*entity.Article, error) {
	if id > 0 {
		art, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get article: %w", err)
		}
		return art, nil
	}
	art, err := s.Repo.GetBySlug(ctx, entity.NormalizeSlug(slug))
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	return art, nil
}
