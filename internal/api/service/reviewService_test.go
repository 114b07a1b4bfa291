package service

import (
	"context"
	"testing"

	"bookhub/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockReviewRepo mocks the repository.ReviewRepository interface
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Upsert(ctx context.Context, review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepo) GetByBook(ctx context.Context, bookID int64) ([]models.Review, error) {
	args := m.Called(bookID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepo) AverageRating(ctx context.Context, bookID int64) (float64, error) {
	args := m.Called(bookID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepo) Count(ctx context.Context, bookID int64) (int64, error) {
	args := m.Called(bookID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepo) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact average stays", 4.0, 4.0},
		{"ratings 5 4 3 average to 4.0", (5.0 + 4.0 + 3.0) / 3.0, 4.0},
		{"two thirds rounds up", 14.0 / 3.0, 4.7},
		{"half rounds up", 3.25, 3.3},
		{"no reviews yields zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundRating(tt.in), 1e-9)
		})
	}
}

func TestGetBookReviews_AggregatesAndRounds(t *testing.T) {
	reviewRepo := new(MockReviewRepo)
	bookRepo := new(MockBookRepo)
	svc := NewReviewService(reviewRepo, bookRepo)

	book := &models.Book{ID: 3}
	bookRepo.On("GetByID", int64(3)).Return(book, nil)
	reviewRepo.On("GetByBook", int64(3)).Return([]models.Review{
		{ID: 1, BookID: 3, Rating: 5},
		{ID: 2, BookID: 3, Rating: 4},
		{ID: 3, BookID: 3, Rating: 4},
	}, nil)
	reviewRepo.On("AverageRating", int64(3)).Return(13.0/3.0, nil)
	reviewRepo.On("Count", int64(3)).Return(int64(3), nil)

	agg, err := svc.GetBookReviews(context.Background(), 3)
	assert.NoError(t, err)
	assert.Len(t, agg.Reviews, 3)
	assert.Equal(t, 4.3, agg.AverageRating)
	assert.Equal(t, int64(3), agg.ReviewCount)
}

func TestGetBookReviews_NoReviews(t *testing.T) {
	reviewRepo := new(MockReviewRepo)
	bookRepo := new(MockBookRepo)
	svc := NewReviewService(reviewRepo, bookRepo)

	book := &models.Book{ID: 9}
	bookRepo.On("GetByID", int64(9)).Return(book, nil)
	reviewRepo.On("GetByBook", int64(9)).Return([]models.Review{}, nil)
	reviewRepo.On("AverageRating", int64(9)).Return(0.0, nil)
	reviewRepo.On("Count", int64(9)).Return(int64(0), nil)

	agg, err := svc.GetBookReviews(context.Background(), 9)
	assert.NoError(t, err)
	assert.NotNil(t, agg.Reviews)
	assert.Empty(t, agg.Reviews)
	assert.Zero(t, agg.AverageRating)
	assert.Zero(t, agg.ReviewCount)
}

func TestGetBookReviews_BookMissing(t *testing.T) {
	reviewRepo := new(MockReviewRepo)
	bookRepo := new(MockBookRepo)
	svc := NewReviewService(reviewRepo, bookRepo)

	bookRepo.On("GetByID", int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetBookReviews(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestAddOrUpdateReview_WritesThenReturnsOwnReviews(t *testing.T) {
	reviewRepo := new(MockReviewRepo)
	bookRepo := new(MockBookRepo)
	svc := NewReviewService(reviewRepo, bookRepo)

	book := &models.Book{ID: 3}
	bookRepo.On("GetByID", int64(3)).Return(book, nil)
	reviewRepo.On("Upsert", mock.MatchedBy(func(r *models.Review) bool {
		return r.UserID == "user-123" && r.BookID == 3 && r.Rating == 4 && r.Comment == "solid"
	})).Return(nil)
	reviewRepo.On("ListByUser", "user-123").Return([]models.Review{
		{ID: 1, UserID: "user-123", BookID: 3, Rating: 4, Comment: "solid"},
	}, nil)

	mine, err := svc.AddOrUpdate(context.Background(), "user-123", 3, 4, "solid")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, 4, mine[0].Rating)

	reviewRepo.AssertExpectations(t)
}
