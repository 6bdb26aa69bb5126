// Package quote provides HTTP handlers for pull quote endpoints.
package quote

import (
	"time"

	"lawgan/internal/domain/entity"
)

// DTO represents the JSON structure for quote data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Title     string    `json:"title" example:"Justice delayed is justice denied."`
	Author    string    `json:"author" example:"William E. Gladstone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDTO(q *entity.Quote) DTO {
	return DTO{
		ID:        q.ID,
		Title:     q.Title,
		Author:    q.Author,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func toDTOs(quotes []*entity.Quote) []DTO {
	dtos := make([]DTO, 0, len(quotes))
	for _, q := range quotes {
		dtos = append(dtos, toDTO(q))
	}
	return dtos
}
