package repository

import (
	"context"
	"fmt"

	"bookhub/internal/api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	Upsert(ctx context.Context, review *models.Review) error
	GetByBook(ctx context.Context, bookID int64) ([]models.Review, error)
	AverageRating(ctx context.Context, bookID int64) (float64, error)
	Count(ctx context.Context, bookID int64) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert writes the review in one statement: ON CONFLICT on the
// (user_id, book_id) pair replaces rating, comment and created_at in place,
// so a second review never appends and concurrent submissions cannot race.
// created_at is reset on replace; the review's timestamp is its latest edit.
func (r *reviewRepository) Upsert(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"rating":     review.Rating,
				"comment":    review.Comment,
				"created_at": gorm.Expr("CURRENT_TIMESTAMP"),
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(review).Error; err != nil {
		return fmt.Errorf("upsert review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByBook(ctx context.Context, bookID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("reviews by book: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) AverageRating(ctx context.Context, bookID int64) (float64, error) {
	var avg struct {
		Average float64
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Where("book_id = ?", bookID).
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	return avg.Average, nil
}

func (r *reviewRepository) Count(ctx context.Context, bookID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("book_id = ?", bookID).
		Count(&count).Error
	return count, err
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("reviews by user: %w", err)
	}
	return reviews, nil
}
