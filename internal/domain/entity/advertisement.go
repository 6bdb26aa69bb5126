package entity

import "time"

// Advertisement represents a placed advertisement banner.
// Page is a free-form placement tag matched by the front end.
type Advertisement struct {
	ID        int64
	Image     []byte
	ImageMime string
	URL       string
	Owner     string
	Page      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
