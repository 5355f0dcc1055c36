package postgres

import "time"

type UserModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Firstname string
	Lastname  string
}

func (UserModel) TableName() string {
	return "users"
}

type BookmarkModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint   `gorm:"index;not null"`
	Title     string `gorm:"not null"`
	Link      string `gorm:"not null"`
	Type      string `gorm:"not null"`
}

func (BookmarkModel) TableName() string {
	return "bookmarks"
}
