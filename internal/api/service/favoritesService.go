package service

import (
	"context"
	"errors"

	"bookhub/internal/api/models"
	"bookhub/internal/api/repository"

	"gorm.io/gorm"
)

type FavoritesService interface {
	Add(ctx context.Context, userID string, bookID int64) ([]int64, error)
	Remove(ctx context.Context, userID string, bookID int64) ([]int64, error)
	List(ctx context.Context, userID string) ([]models.Book, error)
}

type favoritesService struct {
	favorites repository.FavoriteRepository
	books     repository.BookRepository
}

func NewFavoritesService(favorites repository.FavoriteRepository, books repository.BookRepository) FavoritesService {
	return &favoritesService{favorites: favorites, books: books}
}

// Add verifies the book exists, then inserts the membership row. The unique
// index makes a concurrent double-add surface as ErrAlreadyInFavorites for
// exactly one caller.
func (s *favoritesService) Add(ctx context.Context, userID string, bookID int64) ([]int64, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if err := s.favorites.Add(ctx, userID, bookID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyInFavorites
		}
		return nil, err
	}
	return s.favorites.BookIDs(ctx, userID)
}

// Remove succeeds whether or not the book was in the list.
func (s *favoritesService) Remove(ctx context.Context, userID string, bookID int64) ([]int64, error) {
	if err := s.favorites.Remove(ctx, userID, bookID); err != nil {
		return nil, err
	}
	return s.favorites.BookIDs(ctx, userID)
}

func (s *favoritesService) List(ctx context.Context, userID string) ([]models.Book, error) {
	return s.favorites.ListBooks(ctx, userID)
}
