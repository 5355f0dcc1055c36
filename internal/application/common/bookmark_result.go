package common

import "time"

type BookmarkResult struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// MutationResult reports how many rows an update or delete matched. A zero
// count is a normal outcome, not an error: it is what a caller sees when the
// id does not exist or belongs to another user.
type MutationResult struct {
	Count int64 `json:"count"`
}
