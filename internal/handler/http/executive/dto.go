// Package executive provides HTTP handlers for executive profile endpoints.
package executive

import (
	"time"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
)

// DTO represents the JSON structure for executive profile data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Tunde Bassey"`
	Position  string    `json:"position,omitempty" example:"Managing Editor"`
	Image     string    `json:"image,omitempty"`
	ImageMime string    `json:"image_mime,omitempty"`
	About     string    `json:"about,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(e *entity.Executive) DTO {
	return DTO{
		ID:        e.ID,
		Name:      e.Name,
		Position:  e.Position,
		Image:     imageconv.DataURL(e.Image, e.ImageMime),
		ImageMime: e.ImageMime,
		About:     e.About,
		CreatedAt: e.CreatedAt,
	}
}

func toDTOs(executives []*entity.Executive) []DTO {
	dtos := make([]DTO, 0, len(executives))
	for _, e := range executives {
		dtos = append(dtos, toDTO(e))
	}
	return dtos
}
