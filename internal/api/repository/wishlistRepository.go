package repository

import (
	"context"
	"fmt"

	"bookhub/internal/api/models"

	"gorm.io/gorm"
)

// WishlistRepository carries the same contract as FavoriteRepository against
// the wishlist table.
type WishlistRepository interface {
	Add(ctx context.Context, userID string, bookID int64) error
	Remove(ctx context.Context, userID string, bookID int64) error
	ListBooks(ctx context.Context, userID string) ([]models.Book, error)
	BookIDs(ctx context.Context, userID string) ([]int64, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Add(ctx context.Context, userID string, bookID int64) error {
	item := &models.WishlistItem{UserID: userID, BookID: bookID}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID string, bookID int64) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.WishlistItem{}).Error; err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}

func (r *wishlistRepository) ListBooks(ctx context.Context, userID string) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Joins("JOIN user_wishlist ON user_wishlist.book_id = books.id").
		Where("user_wishlist.user_id = ?", userID).
		Order("user_wishlist.added_at DESC").
		Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list wishlist books: %w", err)
	}
	return books, nil
}

func (r *wishlistRepository) BookIDs(ctx context.Context, userID string) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Pluck("book_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list wishlist ids: %w", err)
	}
	return ids, nil
}
