package interfaces

import (
	"context"

	"linkvault/internal/application/command"
	"linkvault/internal/application/common"
)

type BookmarkService interface {
	Save(ctx context.Context, userID uint, cmd *command.SaveBookmarkCommand) error
	List(ctx context.Context, userID uint) ([]common.BookmarkResult, error)
	Update(ctx context.Context, userID, id uint, cmd *command.SaveBookmarkCommand) (*common.MutationResult, error)
	Delete(ctx context.Context, userID, id uint) (*common.MutationResult, error)
}
