package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"linkvault/internal/domain/entities"
	"linkvault/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

// Upsert keys on the username: a repeated signup overwrites every field of
// the existing row, including the timestamp. Last write wins.
func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) (*entities.User, error) {
	userModel := UserModel{
		CreatedAt: user.CreatedAt,
		Username:  user.Username,
		Password:  user.Password,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"created_at", "password", "firstname", "lastname"}),
	}).Create(&userModel).Error
	if err != nil {
		return nil, err
	}

	// Read back the stored row so the caller sees the generated id.
	return r.FindByUsername(ctx, user.Username)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		ID:        userModel.ID,
		CreatedAt: userModel.CreatedAt,
		Username:  userModel.Username,
		Password:  userModel.Password,
		Firstname: userModel.Firstname,
		Lastname:  userModel.Lastname,
	}
}
