package repositories

import (
	"context"

	"linkvault/internal/domain/entities"
)

type UserRepository interface {
	// Upsert creates the row for user.Username or overwrites all of its
	// fields if the username already exists, then returns the stored row.
	Upsert(ctx context.Context, user *entities.User) (*entities.User, error)
	// FindByUsername returns (nil, nil) when no row matches.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
