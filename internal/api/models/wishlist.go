package models

import "time"

// WishlistItem mirrors Favorite; same duplicate protection via the composite
// unique index.
type WishlistItem struct {
	ID      int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_wish_user_book" json:"user_id"`
	BookID  int64     `gorm:"not null;uniqueIndex:idx_wish_user_book;index" json:"book_id"`
	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (WishlistItem) TableName() string {
	return "user_wishlist"
}
