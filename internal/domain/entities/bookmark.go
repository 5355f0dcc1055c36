package entities

import (
	"errors"
	"time"
)

// Bookmark is a saved link owned by a single user. The owner never changes
// after creation; every query against the store filters on it.
type Bookmark struct {
	ID        uint
	CreatedAt time.Time
	UserID    uint
	Title     string
	Link      string
	Type      string
}

func NewBookmark(userID uint, title, link, bookmarkType string) *Bookmark {
	return &Bookmark{
		CreatedAt: time.Now(),
		UserID:    userID,
		Title:     title,
		Link:      link,
		Type:      bookmarkType,
	}
}

// Validate checks the content field minimums. The link is stored verbatim,
// there is no URL parsing beyond the length check.
func (b *Bookmark) Validate() error {
	if len(b.Title) < 2 {
		return errors.New("title must be at least 2 characters")
	}
	if len(b.Link) < 2 {
		return errors.New("link must be at least 2 characters")
	}
	if len(b.Type) < 1 {
		return errors.New("type must not be empty")
	}
	return nil
}
