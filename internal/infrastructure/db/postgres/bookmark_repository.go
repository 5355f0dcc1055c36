package postgres

import (
	"context"

	"gorm.io/gorm"

	"linkvault/internal/domain/entities"
	"linkvault/internal/domain/repositories"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) repositories.BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *entities.Bookmark) (*entities.Bookmark, error) {
	bookmarkModel := BookmarkModel{
		CreatedAt: bookmark.CreatedAt,
		UserID:    bookmark.UserID,
		Title:     bookmark.Title,
		Link:      bookmark.Link,
		Type:      bookmark.Type,
	}

	if err := r.db.WithContext(ctx).Create(&bookmarkModel).Error; err != nil {
		return nil, err
	}

	return r.mapToEntity(&bookmarkModel), nil
}

// ListByOwner orders by primary key so the bounded result is stable across
// calls (insertion order).
func (r *BookmarkRepository) ListByOwner(ctx context.Context, userID uint, limit int) ([]entities.Bookmark, error) {
	var bookmarkModels []BookmarkModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Limit(limit).
		Find(&bookmarkModels).Error
	if err != nil {
		return nil, err
	}

	bookmarks := make([]entities.Bookmark, 0, len(bookmarkModels))
	for i := range bookmarkModels {
		bookmarks = append(bookmarks, *r.mapToEntity(&bookmarkModels[i]))
	}
	return bookmarks, nil
}

// UpdateOwned filters on both id and user_id: a row owned by another user
// matches nothing and the caller sees a zero count, not an error.
func (r *BookmarkRepository) UpdateOwned(ctx context.Context, id, userID uint, title, link, bookmarkType string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&BookmarkModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"title": title,
			"link":  link,
			"type":  bookmarkType,
		})
	return result.RowsAffected, result.Error
}

func (r *BookmarkRepository) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&BookmarkModel{})
	return result.RowsAffected, result.Error
}

func (r *BookmarkRepository) mapToEntity(bookmarkModel *BookmarkModel) *entities.Bookmark {
	return &entities.Bookmark{
		ID:        bookmarkModel.ID,
		CreatedAt: bookmarkModel.CreatedAt,
		UserID:    bookmarkModel.UserID,
		Title:     bookmarkModel.Title,
		Link:      bookmarkModel.Link,
		Type:      bookmarkModel.Type,
	}
}
