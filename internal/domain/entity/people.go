package entity

import "time"

// BoardMember represents a member of the editorial board.
type BoardMember struct {
	ID        int64
	Name      string
	Image     []byte
	ImageMime string
	About     string
	CreatedAt time.Time
}

// Executive represents a member of the executive body.
// Position is an explicit structured field rather than being encoded
// in the first line of About.
type Executive struct {
	ID        int64
	Name      string
	Position  string
	Image     []byte
	ImageMime string
	About     string
	CreatedAt time.Time
}
