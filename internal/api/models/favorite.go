package models

import "time"

// Favorite is one entry in a user's favorites list. The composite unique
// index makes a duplicate add fail at the database instead of relying on a
// read-then-write check, so two concurrent adds cannot clobber each other.
type Favorite struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_fav_user_book" json:"user_id"`
	BookID  int64     `gorm:"not null;uniqueIndex:idx_fav_user_book;index" json:"book_id"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (Favorite) TableName() string {
	return "user_favorites"
}
