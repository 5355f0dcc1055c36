package repositories

import (
	"context"

	"linkvault/internal/domain/entities"
)

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *entities.Bookmark) (*entities.Bookmark, error)
	// ListByOwner returns at most limit rows owned by userID, oldest first.
	ListByOwner(ctx context.Context, userID uint, limit int) ([]entities.Bookmark, error)
	// UpdateOwned modifies title/link/type of the row matching both id and
	// userID and reports how many rows matched. A row owned by someone else
	// yields 0 without error.
	UpdateOwned(ctx context.Context, id, userID uint, title, link, bookmarkType string) (int64, error)
	// DeleteOwned removes the row matching both id and userID, reporting the
	// matched count with the same semantics as UpdateOwned.
	DeleteOwned(ctx context.Context, id, userID uint) (int64, error)
}
