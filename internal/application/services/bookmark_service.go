package services

import (
	"context"
	"fmt"

	"linkvault/internal/application/command"
	"linkvault/internal/application/common"
	"linkvault/internal/application/interfaces"
	"linkvault/internal/application/mapper"
	"linkvault/internal/domain/entities"
	"linkvault/internal/domain/repositories"
)

// maxListSize bounds every list response.
const maxListSize = 10

type BookmarkService struct {
	bookmarkRepo repositories.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo repositories.BookmarkRepository) interfaces.BookmarkService {
	return &BookmarkService{bookmarkRepo: bookmarkRepo}
}

func (s *BookmarkService) Save(ctx context.Context, userID uint, cmd *command.SaveBookmarkCommand) error {
	bookmark := entities.NewBookmark(userID, cmd.Title, cmd.Link, cmd.Type)
	if err := bookmark.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	_, err := s.bookmarkRepo.Create(ctx, bookmark)
	return err
}

func (s *BookmarkService) List(ctx context.Context, userID uint) ([]common.BookmarkResult, error) {
	bookmarks, err := s.bookmarkRepo.ListByOwner(ctx, userID, maxListSize)
	if err != nil {
		return nil, err
	}

	results := make([]common.BookmarkResult, 0, len(bookmarks))
	for i := range bookmarks {
		results = append(results, *mapper.NewBookmarkResultFromEntity(&bookmarks[i]))
	}
	return results, nil
}

// Update touches title/link/type only; the creation timestamp and the owner
// stay as they were. A zero count means the id did not match a row owned by
// the caller and is reported as a successful no-op.
func (s *BookmarkService) Update(ctx context.Context, userID, id uint, cmd *command.SaveBookmarkCommand) (*common.MutationResult, error) {
	bookmark := entities.NewBookmark(userID, cmd.Title, cmd.Link, cmd.Type)
	if err := bookmark.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	count, err := s.bookmarkRepo.UpdateOwned(ctx, id, userID, cmd.Title, cmd.Link, cmd.Type)
	if err != nil {
		return nil, err
	}

	return &common.MutationResult{Count: count}, nil
}

func (s *BookmarkService) Delete(ctx context.Context, userID, id uint) (*common.MutationResult, error) {
	count, err := s.bookmarkRepo.DeleteOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return &common.MutationResult{Count: count}, nil
}
