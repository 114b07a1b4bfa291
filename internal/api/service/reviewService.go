package service

import (
	"context"
	"errors"
	"math"

	"bookhub/internal/api/dto"
	"bookhub/internal/api/models"
	"bookhub/internal/api/repository"

	"gorm.io/gorm"
)

type ReviewService interface {
	AddOrUpdate(ctx context.Context, userID string, bookID int64, rating int, comment string) ([]dto.ReviewResponse, error)
	GetBookReviews(ctx context.Context, bookID int64) (*dto.BookReviewsResponse, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
	books   repository.BookRepository
}

func NewReviewService(reviews repository.ReviewRepository, books repository.BookRepository) ReviewService {
	return &reviewService{reviews: reviews, books: books}
}

// AddOrUpdate submits the user's review for a book. A repeat submission
// replaces the earlier one instead of appending. Returns the user's reviews
// after the write.
func (s *reviewService) AddOrUpdate(ctx context.Context, userID string, bookID int64, rating int, comment string) ([]dto.ReviewResponse, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	review := &models.Review{
		UserID:  userID,
		BookID:  bookID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviews.Upsert(ctx, review); err != nil {
		return nil, err
	}

	mine, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewResponse, 0, len(mine))
	for _, r := range mine {
		out = append(out, dto.FromModelToReviewResponse(r))
	}
	return out, nil
}

// GetBookReviews returns the book's reviews newest first along with the
// average rating rounded to one decimal place and the review count. A book
// with no reviews yields an empty list, average 0 and count 0.
func (s *reviewService) GetBookReviews(ctx context.Context, bookID int64) (*dto.BookReviewsResponse, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	list, err := s.reviews.GetByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	avg, err := s.reviews.AverageRating(ctx, bookID)
	if err != nil {
		return nil, err
	}
	count, err := s.reviews.Count(ctx, bookID)
	if err != nil {
		return nil, err
	}

	reviews := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		reviews = append(reviews, dto.FromModelToReviewResponse(r))
	}
	return &dto.BookReviewsResponse{
		Reviews:       reviews,
		AverageRating: RoundRating(avg),
		ReviewCount:   count,
	}, nil
}

// RoundRating rounds to one decimal place, half away from zero.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}
