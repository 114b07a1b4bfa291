package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"bookhub/internal/api/dto"
	"bookhub/internal/api/models"
	"bookhub/internal/api/repository"

	"gorm.io/gorm"
)

type BookService interface {
	List(ctx context.Context, f dto.BookFilter, page dto.PageQuery) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, in dto.CreateBookDTO) (*models.Book, error)
	Update(ctx context.Context, id int64, in dto.UpdateBookDTO) (*models.Book, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, page dto.PageQuery) ([]models.Book, int64, error)
	ByGenre(ctx context.Context, genre string) ([]models.Book, error)
	ByAuthor(ctx context.Context, author string) ([]models.Book, error)
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(r repository.BookRepository) BookService {
	return &bookService{repo: r}
}

func (s *bookService) List(ctx context.Context, f dto.BookFilter, page dto.PageQuery) ([]models.Book, int64, error) {
	return s.repo.List(ctx, f, page)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *bookService) Create(ctx context.Context, in dto.CreateBookDTO) (*models.Book, error) {
	b := in.ToModel()
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	b.ISBN = strings.TrimSpace(b.ISBN)

	if fields := validateBook(&b); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	// Friendly pre-check; the unique index still catches a concurrent insert.
	if exists, err := s.repo.ExistsByISBN(ctx, b.ISBN); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrDuplicateISBN
	}

	if err := s.repo.Create(ctx, &b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateISBN
		}
		return nil, err
	}
	return &b, nil
}

func (s *bookService) Update(ctx context.Context, id int64, in dto.UpdateBookDTO) (*models.Book, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	in.ApplyTo(existing)
	if fields := validateBook(existing); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateISBN
		}
		return nil, err
	}
	return existing, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}

func (s *bookService) Search(ctx context.Context, query string, page dto.PageQuery) ([]models.Book, int64, error) {
	return s.repo.Search(ctx, query, page)
}

func (s *bookService) ByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	return s.repo.ByGenre(ctx, genre)
}

func (s *bookService) ByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	return s.repo.ByAuthor(ctx, author)
}

// validateBook enforces the catalog schema rules and returns one message per
// violated field. Length limits count characters, not bytes, to match the
// varchar columns.
func validateBook(b *models.Book) []string {
	var fields []string

	if b.Title == "" {
		fields = append(fields, "title is required")
	} else if utf8.RuneCountInString(b.Title) > 200 {
		fields = append(fields, "title must be at most 200 characters")
	}
	if b.Author == "" {
		fields = append(fields, "author is required")
	} else if utf8.RuneCountInString(b.Author) > 100 {
		fields = append(fields, "author must be at most 100 characters")
	}
	if b.Description == "" {
		fields = append(fields, "description is required")
	} else if utf8.RuneCountInString(b.Description) > 1000 {
		fields = append(fields, "description must be at most 1000 characters")
	}
	if !models.IsValidGenre(b.Genre) {
		fields = append(fields, fmt.Sprintf("genre must be one of: %s", strings.Join(models.ValidGenres, ", ")))
	}
	if b.PublicationDate.IsZero() {
		fields = append(fields, "publicationDate is required")
	}
	if b.ISBN == "" {
		fields = append(fields, "isbn is required")
	}
	if b.Rating < 0 || b.Rating > 5 {
		fields = append(fields, "rating must be between 0 and 5")
	}
	if b.Price < 0 {
		fields = append(fields, "price must be zero or positive")
	}
	if b.Pages < 1 {
		fields = append(fields, "pages must be at least 1")
	}
	if b.Publisher == "" {
		fields = append(fields, "publisher is required")
	}
	return fields
}
