// Package advertisement provides HTTP handlers for advertisement endpoints.
package advertisement

import (
	"time"

	"lawgan/internal/domain/entity"
	"lawgan/internal/imageconv"
)

// DTO represents the JSON structure for advertisement data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Image     string    `json:"image,omitempty"`
	ImageMime string    `json:"image_mime,omitempty"`
	URL       string    `json:"url" example:"https://sponsor.example"`
	Owner     string    `json:"owner" example:"Acme Chambers"`
	Page      string    `json:"page" example:"home"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDTO(a *entity.Advertisement) DTO {
	return DTO{
		ID:        a.ID,
		Image:     imageconv.DataURL(a.Image, a.ImageMime),
		ImageMime: a.ImageMime,
		URL:       a.URL,
		Owner:     a.Owner,
		Page:      a.Page,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toDTOs(ads []*entity.Advertisement) []DTO {
	dtos := make([]DTO, 0, len(ads))
	for _, a := range ads {
		dtos = append(dtos, toDTO(a))
	}
	return dtos
}
