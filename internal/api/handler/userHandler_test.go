package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookhub/internal/api/dto"
	"bookhub/internal/api/models"
	"bookhub/internal/api/response"
	"bookhub/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFavoritesService mocks the FavoritesService interface
type MockFavoritesService struct {
	mock.Mock
}

func (m *MockFavoritesService) Add(ctx context.Context, userID string, bookID int64) ([]int64, error) {
	args := m.Called(userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockFavoritesService) Remove(ctx context.Context, userID string, bookID int64) ([]int64, error) {
	args := m.Called(userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockFavoritesService) List(ctx context.Context, userID string) ([]models.Book, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Book), args.Error(1)
}

// MockWishlistService mocks the WishlistService interface
type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) Add(ctx context.Context, userID string, bookID int64) ([]int64, error) {
	args := m.Called(userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockWishlistService) Remove(ctx context.Context, userID string, bookID int64) ([]int64, error) {
	args := m.Called(userID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockWishlistService) List(ctx context.Context, userID string) ([]models.Book, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Book), args.Error(1)
}

// MockReviewService mocks the ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) AddOrUpdate(ctx context.Context, userID string, bookID int64, rating int, comment string) ([]dto.ReviewResponse, error) {
	args := m.Called(userID, bookID, rating, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) GetBookReviews(ctx context.Context, bookID int64) (*dto.BookReviewsResponse, error) {
	args := m.Called(bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookReviewsResponse), args.Error(1)
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newUserRouter(fav *MockFavoritesService, wish *MockWishlistService, rev *MockReviewService, userID string) *gin.Engine {
	h := NewUserHandler(fav, wish, rev, testLogger())
	router := setupRouter()
	api := router.Group("/api", asUser(userID))
	h.RegisterRoutes(api, func(c *gin.Context) { c.Next() })
	return router
}

func TestAddFavorite_Success(t *testing.T) {
	fav, wish, rev := new(MockFavoritesService), new(MockWishlistService), new(MockReviewService)
	router := newUserRouter(fav, wish, rev, "user-123")

	fav.On("Add", "user-123", int64(3)).Return([]int64{1, 3}, nil)

	req, _ := http.NewRequest("POST", "/api/users/favorites/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env response.Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "Book added to favorites", env.Message)

	fav.AssertExpectations(t)
}

func TestAddFavorite_AlreadyPresent(t *testing.T) {
	fav, wish, rev := new(MockFavoritesService), new(MockWishlistService), new(MockReviewService)
	router := newUserRouter(fav, wish, rev, "user-123")

	fav.On("Add", "user-123", int64(3)).Return(nil, service.ErrAlreadyInFavorites)

	req, _ := http.NewRequest("POST", "/api/users/favorites/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env response.Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "Book already in favorites", env.Message)
}

func TestAddFavorite_BookMissing(t *testing.T) {
	fav, wish, rev := new(MockFavoritesService), new(MockWishlistService), new(MockReviewService)
	router := newUserRouter(fav, wish, rev, "user-123")

	fav.On("Add", "user-123", int64(999)).Return(nil, service.ErrBookNotFound)

	req, _ := http.NewRequest("POST", "/api/users/favorites/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFavorite_AbsentEntryStillSucceeds(t *testing.T) {
	fav, wish, rev := new(MockFavoritesService), new(MockWishlistService), new(MockReviewService)
	router := newUserRouter(fav, wish, rev, "user-123")

	fav.On("Remove", "user-123", int64(8)).Return([]int64{}, nil)

	req, _ := http.NewRequest("DELETE", "/api/users/favorites/8", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env response.Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Book removed from favorites", env.Message)
}

func TestAddToWishlist_InvalidBookID(t *testing.T) {
	fav, wish, rev := new(MockFavoritesService), new(MockWishlistService), new(MockReviewService)
	router := newUserRouter(fav, wish, rev, "user-123")

	req, _ := http.NewRequest("POST", "/api/users/wishlist/notanumber", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	wish.AssertNotCalled(t, "Add")
}

func TestAddReview_RatingOutOfRange(t *testing.T) {
	fav, wish, rev := new(MockFavoritesService), new(MockWishlistService), new(MockReviewService)
	router := newUserRouter(fav, wish, rev, "user-123")

	body, _ := json.Marshal(dto.AddReviewRequest{Rating: 6, Comment: "too good"})
	req, _ := http.NewRequest("POST", "/api/users/reviews/3", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	rev.AssertNotCalled(t, "AddOrUpdate")
}

func TestAddReview_ReturnsUsersReviews(t *testing.T) {
	fav, wish, rev := new(MockFavoritesService), new(MockWishlistService), new(MockReviewService)
	router := newUserRouter(fav, wish, rev, "user-123")

	mine := []dto.ReviewResponse{{ID: 1, UserID: "user-123", BookID: 3, Rating: 4, Comment: "solid"}}
	rev.On("AddOrUpdate", "user-123", int64(3), 4, "solid").Return(mine, nil)

	body, _ := json.Marshal(dto.AddReviewRequest{Rating: 4, Comment: "solid"})
	req, _ := http.NewRequest("POST", "/api/users/reviews/3", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env response.Envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "Review added successfully", env.Message)

	rev.AssertExpectations(t)
}

func TestGetBookReviews_Aggregate(t *testing.T) {
	fav, wish, rev := new(MockFavoritesService), new(MockWishlistService), new(MockReviewService)
	router := newUserRouter(fav, wish, rev, "")

	agg := &dto.BookReviewsResponse{
		Reviews:       []dto.ReviewResponse{{ID: 1, BookID: 3, Rating: 5}},
		AverageRating: 4.0,
		ReviewCount:   3,
	}
	rev.On("GetBookReviews", int64(3)).Return(agg, nil)

	req, _ := http.NewRequest("GET", "/api/users/reviews/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Success bool                    `json:"success"`
		Data    dto.BookReviewsResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, 4.0, env.Data.AverageRating)
	assert.Equal(t, int64(3), env.Data.ReviewCount)
}

func TestGetBookReviews_NoReviewsYet(t *testing.T) {
	fav, wish, rev := new(MockFavoritesService), new(MockWishlistService), new(MockReviewService)
	router := newUserRouter(fav, wish, rev, "")

	agg := &dto.BookReviewsResponse{Reviews: []dto.ReviewResponse{}, AverageRating: 0, ReviewCount: 0}
	rev.On("GetBookReviews", int64(9)).Return(agg, nil)

	req, _ := http.NewRequest("GET", "/api/users/reviews/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data dto.BookReviewsResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Empty(t, env.Data.Reviews)
	assert.Zero(t, env.Data.AverageRating)
}
