package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"bookhub/internal/api/dto"
	"bookhub/internal/api/models"
	"bookhub/internal/api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockBookRepo mocks the repository.BookRepository interface
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) List(ctx context.Context, f dto.BookFilter, page dto.PageQuery) ([]models.Book, int64, error) {
	args := m.Called(f, page)
	return args.Get(0).([]models.Book), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookRepo) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepo) Create(ctx context.Context, b *models.Book) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockBookRepo) Update(ctx context.Context, b *models.Book) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockBookRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBookRepo) Search(ctx context.Context, query string, page dto.PageQuery) ([]models.Book, int64, error) {
	args := m.Called(query, page)
	return args.Get(0).([]models.Book), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookRepo) ByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	args := m.Called(genre)
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepo) ByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	args := m.Called(author)
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	args := m.Called(isbn)
	return args.Bool(0), args.Error(1)
}

func validCreateDTO() dto.CreateBookDTO {
	price := 16.75
	pages := 389
	return dto.CreateBookDTO{
		Title:           "The Cartographer's Daughter",
		Author:          "Imogen Hale",
		Description:     "A mapmaker's daughter inherits a chart of places that do not exist yet.",
		Genre:           "Fantasy",
		PublicationDate: time.Date(2020, 2, 14, 0, 0, 0, 0, time.UTC),
		ISBN:            "978-1-8611-9702-9",
		Price:           &price,
		Pages:           &pages,
		Publisher:       "Lanternfall Books",
	}
}

func TestCreateBook_AppliesDefaults(t *testing.T) {
	repo := new(MockBookRepo)
	svc := NewBookService(repo)

	repo.On("ExistsByISBN", "978-1-8611-9702-9").Return(false, nil)
	repo.On("Create", mock.MatchedBy(func(b *models.Book) bool {
		return b.CoverImage == models.DefaultCoverImage && b.Language == "English" && b.InStock
	})).Return(nil)

	book, err := svc.Create(context.Background(), validCreateDTO())
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultCoverImage, book.CoverImage)
	assert.Equal(t, "English", book.Language)
	assert.True(t, book.InStock)
	assert.False(t, book.Featured)

	repo.AssertExpectations(t)
}

func TestCreateBook_InvalidGenre(t *testing.T) {
	repo := new(MockBookRepo)
	svc := NewBookService(repo)

	in := validCreateDTO()
	in.Genre = "Cyberpunk"

	_, err := svc.Create(context.Background(), in)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, ve.Fields, 1)
	assert.Contains(t, ve.Fields[0], "genre")

	repo.AssertNotCalled(t, "Create")
}

func TestCreateBook_CollectsAllFieldErrors(t *testing.T) {
	repo := new(MockBookRepo)
	svc := NewBookService(repo)

	price := -1.0
	pages := 0
	in := validCreateDTO()
	in.Price = &price
	in.Pages = &pages
	in.Genre = "Unknown"

	_, err := svc.Create(context.Background(), in)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Len(t, ve.Fields, 3)
}

func TestCreateBook_LengthLimitsCountCharactersNotBytes(t *testing.T) {
	repo := new(MockBookRepo)
	svc := NewBookService(repo)

	// 150 CJK characters are 450 bytes but well under the 200-character cap.
	in := validCreateDTO()
	in.Title = strings.Repeat("書", 150)

	repo.On("ExistsByISBN", in.ISBN).Return(false, nil)
	repo.On("Create", mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)

	in.Title = strings.Repeat("書", 201)
	_, err = svc.Create(context.Background(), in)
	ve, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, ve.Fields[0], "title")
}

func TestCreateBook_DuplicateISBN(t *testing.T) {
	repo := new(MockBookRepo)
	svc := NewBookService(repo)

	repo.On("ExistsByISBN", "978-1-8611-9702-9").Return(true, nil)

	_, err := svc.Create(context.Background(), validCreateDTO())
	assert.ErrorIs(t, err, ErrDuplicateISBN)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateBook_ConcurrentDuplicateISBN(t *testing.T) {
	repo := new(MockBookRepo)
	svc := NewBookService(repo)

	// Pre-check misses; the insert itself hits the unique index.
	repo.On("ExistsByISBN", "978-1-8611-9702-9").Return(false, nil)
	repo.On("Create", mock.Anything).Return(repository.ErrDuplicate)

	_, err := svc.Create(context.Background(), validCreateDTO())
	assert.ErrorIs(t, err, ErrDuplicateISBN)
}

func TestUpdateBook_PartialUpdateKeepsOtherFields(t *testing.T) {
	repo := new(MockBookRepo)
	svc := NewBookService(repo)

	existing := validCreateDTO().ToModel()
	existing.ID = 7
	repo.On("GetByID", int64(7)).Return(&existing, nil)
	repo.On("Update", mock.Anything).Return(nil)

	newPrice := 12.5
	updated, err := svc.Update(context.Background(), 7, dto.UpdateBookDTO{Price: &newPrice})
	assert.NoError(t, err)
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, "The Cartographer's Daughter", updated.Title)
	assert.Equal(t, "Fantasy", updated.Genre)
}

func TestUpdateBook_RejectsInvalidGenre(t *testing.T) {
	repo := new(MockBookRepo)
	svc := NewBookService(repo)

	existing := validCreateDTO().ToModel()
	existing.ID = 7
	repo.On("GetByID", int64(7)).Return(&existing, nil)

	badGenre := "Cyberpunk"
	_, err := svc.Update(context.Background(), 7, dto.UpdateBookDTO{Genre: &badGenre})
	_, ok := AsValidationError(err)
	assert.True(t, ok)

	repo.AssertNotCalled(t, "Update")
}

func TestGetBook_NotFound(t *testing.T) {
	repo := new(MockBookRepo)
	svc := NewBookService(repo)

	repo.On("GetByID", int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestDeleteBook_NotFound(t *testing.T) {
	repo := new(MockBookRepo)
	svc := NewBookService(repo)

	repo.On("Delete", int64(42)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookNotFound)
}
