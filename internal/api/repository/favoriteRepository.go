package repository

import (
	"context"
	"fmt"

	"bookhub/internal/api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID string, bookID int64) error
	Remove(ctx context.Context, userID string, bookID int64) error
	ListBooks(ctx context.Context, userID string) ([]models.Book, error)
	BookIDs(ctx context.Context, userID string) ([]int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add inserts directly and lets the (user_id, book_id) unique index decide:
// a concurrent duplicate comes back as ErrDuplicate, never as a lost update.
func (r *favoriteRepository) Add(ctx context.Context, userID string, bookID int64) error {
	fav := &models.Favorite{UserID: userID, BookID: bookID}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("add to favorites: %w", err)
	}
	return nil
}

// Remove is idempotent: deleting an absent entry affects zero rows and
// succeeds.
func (r *favoriteRepository) Remove(ctx context.Context, userID string, bookID int64) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.Favorite{}).Error; err != nil {
		return fmt.Errorf("remove from favorites: %w", err)
	}
	return nil
}

// ListBooks resolves the favorites to full book records. The inner join drops
// entries whose book was deleted, so dangling references never surface here.
func (r *favoriteRepository) ListBooks(ctx context.Context, userID string) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Joins("JOIN user_favorites ON user_favorites.book_id = books.id").
		Where("user_favorites.user_id = ?", userID).
		Order("user_favorites.added_at DESC").
		Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list favorite books: %w", err)
	}
	return books, nil
}

func (r *favoriteRepository) BookIDs(ctx context.Context, userID string) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Pluck("book_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list favorite ids: %w", err)
	}
	return ids, nil
}
