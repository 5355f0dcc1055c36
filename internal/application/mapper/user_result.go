package mapper

import (
	"linkvault/internal/application/common"
	"linkvault/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	if user == nil {
		return nil
	}

	return &common.UserResult{
		ID:        user.ID,
		Username:  user.Username,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		CreatedAt: user.CreatedAt,
	}
}

func NewBookmarkResultFromEntity(bookmark *entities.Bookmark) *common.BookmarkResult {
	if bookmark == nil {
		return nil
	}

	return &common.BookmarkResult{
		ID:        bookmark.ID,
		Title:     bookmark.Title,
		Link:      bookmark.Link,
		Type:      bookmark.Type,
		CreatedAt: bookmark.CreatedAt,
	}
}
