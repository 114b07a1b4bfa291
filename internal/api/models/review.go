package models

import "time"

// Review lives in its own table keyed by (user_id, book_id) rather than being
// embedded in the user record. The unique index enforces at-most-one review
// per user per book, and the book_id index keeps per-book aggregation from
// scanning the whole table.
type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_review_user_book"`
	BookID    int64     `json:"book_id" gorm:"not null;uniqueIndex:idx_review_user_book;index"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment" gorm:"size:2000"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
