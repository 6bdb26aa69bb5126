package entity

import "time"

// MaxQuotes caps how many quotes may exist at once. The public pages rotate
// through at most six, so publishing a seventh is rejected.
const MaxQuotes = 6

// Quote represents a quotation shown on the home page.
// Title holds the quoted text itself.
type Quote struct {
	ID        int64
	Title     string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
