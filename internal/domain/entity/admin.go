package entity

import "time"

// AdminAccount represents the single administrator identity of the site.
// PasswordHash holds a bcrypt hash and is never serialized to API responses.
type AdminAccount struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    time.Time
}
