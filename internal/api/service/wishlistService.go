package service

import (
	"context"
	"errors"

	"bookhub/internal/api/models"
	"bookhub/internal/api/repository"

	"gorm.io/gorm"
)

type WishlistService interface {
	Add(ctx context.Context, userID string, bookID int64) ([]int64, error)
	Remove(ctx context.Context, userID string, bookID int64) ([]int64, error)
	List(ctx context.Context, userID string) ([]models.Book, error)
}

type wishlistService struct {
	wishlist repository.WishlistRepository
	books    repository.BookRepository
}

func NewWishlistService(wishlist repository.WishlistRepository, books repository.BookRepository) WishlistService {
	return &wishlistService{wishlist: wishlist, books: books}
}

func (s *wishlistService) Add(ctx context.Context, userID string, bookID int64) ([]int64, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if err := s.wishlist.Add(ctx, userID, bookID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyInWishlist
		}
		return nil, err
	}
	return s.wishlist.BookIDs(ctx, userID)
}

func (s *wishlistService) Remove(ctx context.Context, userID string, bookID int64) ([]int64, error) {
	if err := s.wishlist.Remove(ctx, userID, bookID); err != nil {
		return nil, err
	}
	return s.wishlist.BookIDs(ctx, userID)
}

func (s *wishlistService) List(ctx context.Context, userID string) ([]models.Book, error) {
	return s.wishlist.ListBooks(ctx, userID)
}
