// Package admin provides HTTP handlers for administrator account endpoints:
// signup and signin. The password hash never leaves the server.
package admin

import (
	"time"

	"lawgan/internal/domain/entity"
)

// DTO represents the JSON structure for admin account data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"Ada Okafor"`
	Email     string    `json:"email" example:"ada@lawgan.example"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(a *entity.AdminAccount) DTO {
	return DTO{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

// sessionDTO is the trimmed account shape returned alongside a token.
type sessionDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
