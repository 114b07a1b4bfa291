package repository

import (
	"context"
	"fmt"

	"bookhub/internal/api/dto"
	"bookhub/internal/api/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	List(ctx context.Context, f dto.BookFilter, page dto.PageQuery) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, b *models.Book) error
	Update(ctx context.Context, b *models.Book) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, page dto.PageQuery) ([]models.Book, int64, error)
	ByGenre(ctx context.Context, genre string) ([]models.Book, error)
	ByAuthor(ctx context.Context, author string) ([]models.Book, error)
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// applyFilter translates the typed filter into WHERE clauses. Every branch is
// explicit; no dynamically shaped filter object.
func applyFilter(q *gorm.DB, f dto.BookFilter) *gorm.DB {
	if f.Genre != "" {
		q = q.Where("genre = ?", f.Genre)
	}
	if f.Author != "" {
		q = q.Where("author ILIKE ?", "%"+f.Author+"%")
	}
	if f.MinRating != nil {
		q = q.Where("rating >= ?", *f.MinRating)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	return q
}

// List returns one page of books matching the filter plus the total count of
// matches across all pages.
func (r *bookRepository) List(ctx context.Context, f dto.BookFilter, page dto.PageQuery) ([]models.Book, int64, error) {
	var list []models.Book
	var total int64

	base := applyFilter(r.db.WithContext(ctx).Model(&models.Book{}), f)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	if err := base.
		Order(f.OrderClause()).
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	return list, total, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) Create(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) Update(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Save(b).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// Delete removes the book row only. Favorites, wishlist entries and reviews
// referencing it stay behind as dangling references; readers tolerate them.
func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Search matches the query against title, author, description and genre
// (case-insensitive substring), paginated like the listing endpoint. The
// explicit ORDER BY keeps page windows stable; without it Postgres may return
// rows in a different order per execution and LIMIT/OFFSET pages could skip
// or repeat rows.
func (r *bookRepository) Search(ctx context.Context, query string, page dto.PageQuery) ([]models.Book, int64, error) {
	var list []models.Book
	var total int64

	pattern := "%" + query + "%"
	base := r.db.WithContext(ctx).Model(&models.Book{}).
		Where("title ILIKE ? OR author ILIKE ? OR description ILIKE ? OR genre ILIKE ?",
			pattern, pattern, pattern, pattern)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count search results: %w", err)
	}
	if err := base.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("search books: %w", err)
	}
	return list, total, nil
}

func (r *bookRepository) ByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Where("genre ILIKE ?", "%"+genre+"%").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("books by genre: %w", err)
	}
	return list, nil
}

func (r *bookRepository) ByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Where("author ILIKE ?", "%"+author+"%").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("books by author: %w", err)
	}
	return list, nil
}

func (r *bookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("isbn = ?", isbn).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
