// Package article provides HTTP handlers for article endpoints.
// It includes handlers for listing, publishing, editing, and deleting articles.
package article

import (
	"time"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
)

// DTO represents the JSON structure for article data transfer.
// The stored image bytes are rendered as a display-ready data URL.
type DTO struct {
	ID         int64     `json:"id" example:"1"`
	Title      string    `json:"title" example:"Supreme Court ruling explained"`
	Slug       string    `json:"slug" example:"supreme-court-ruling-explained"`
	Summary    string    `json:"summary,omitempty"`
	Content    string    `json:"content"`
	Category   string    `json:"category" example:"law"`
	IsBreaking bool      `json:"is_breaking"`
	Published  bool      `json:"published"`
	Author     string    `json:"author,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	ImageMime  string    `json:"image_mime,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:         a.ID,
		Title:      a.Title,
		Slug:       a.Slug,
		Summary:    a.Summary,
		Content:    a.Content,
		Category:   a.Category,
		IsBreaking: a.IsBreaking,
		Published:  a.Published,
		Author:     a.Author,
		ImageURL:   imageconv.DataURL(a.Image, a.ImageMime),
		ImageMime:  a.ImageMime,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func validCategoryParam(category string) bool {
	return entity.ValidCategory(entity.NormalizeCategory(category))
}

func toDTOs(articles []*entity.Article) []DTO {
	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}
	return dtos
}
