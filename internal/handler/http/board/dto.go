// Package board provides HTTP handlers for editorial board member endpoints.
package board

import (
	"time"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
)

// DTO represents the JSON structure for editorial board member data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Chinwe Adeyemi"`
	Image     string    `json:"image,omitempty"`
	ImageMime string    `json:"image_mime,omitempty"`
	About     string    `json:"about,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(m *entity.BoardMember) DTO {
	return DTO{
		ID:        m.ID,
		Name:      m.Name,
		Image:     imageconv.DataURL(m.Image, m.ImageMime),
		ImageMime: m.ImageMime,
		About:     m.About,
		CreatedAt: m.CreatedAt,
	}
}

func toDTOs(members []*entity.BoardMember) []DTO {
	dtos := make([]DTO, 0, len(members))
	for _, m := range members {
		dtos = append(dtos, toDTO(m))
	}
	return dtos
}
