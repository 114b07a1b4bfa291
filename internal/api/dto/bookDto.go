package dto

import (
	"time"

	"bookhub/internal/api/models"
)

// CreateBookDTO used for POST /api/books
type CreateBookDTO struct {
	Title           string    `json:"title" binding:"required"`
	Author          string    `json:"author" binding:"required"`
	Description     string    `json:"description" binding:"required"`
	Genre           string    `json:"genre" binding:"required"`
	PublicationDate time.Time `json:"publicationDate" binding:"required"`
	ISBN            string    `json:"isbn" binding:"required"`
	CoverImage      *string   `json:"coverImage,omitempty"`
	Rating          *float64  `json:"rating,omitempty"`
	Price           *float64  `json:"price" binding:"required"`
	Pages           *int      `json:"pages" binding:"required"`
	Language        *string   `json:"language,omitempty"`
	Publisher       string    `json:"publisher" binding:"required"`
	InStock         *bool     `json:"inStock,omitempty"`
	Featured        *bool     `json:"featured,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
}

func (d CreateBookDTO) ToModel() models.Book {
	b := models.Book{
		Title:           d.Title,
		Author:          d.Author,
		Description:     d.Description,
		Genre:           d.Genre,
		PublicationDate: d.PublicationDate,
		ISBN:            d.ISBN,
		CoverImage:      models.DefaultCoverImage,
		Language:        "English",
		Publisher:       d.Publisher,
		InStock:         true,
		Tags:            d.Tags,
	}
	if d.CoverImage != nil && *d.CoverImage != "" {
		b.CoverImage = *d.CoverImage
	}
	if d.Rating != nil {
		b.Rating = *d.Rating
	}
	if d.Price != nil {
		b.Price = *d.Price
	}
	if d.Pages != nil {
		b.Pages = *d.Pages
	}
	if d.Language != nil && *d.Language != "" {
		b.Language = *d.Language
	}
	if d.InStock != nil {
		b.InStock = *d.InStock
	}
	if d.Featured != nil {
		b.Featured = *d.Featured
	}
	return b
}

// UpdateBookDTO used for PUT /api/books/:id (partial updates allowed)
type UpdateBookDTO struct {
	Title           *string    `json:"title,omitempty"`
	Author          *string    `json:"author,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Genre           *string    `json:"genre,omitempty"`
	PublicationDate *time.Time `json:"publicationDate,omitempty"`
	ISBN            *string    `json:"isbn,omitempty"`
	CoverImage      *string    `json:"coverImage,omitempty"`
	Rating          *float64   `json:"rating,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	Pages           *int       `json:"pages,omitempty"`
	Language        *string    `json:"language,omitempty"`
	Publisher       *string    `json:"publisher,omitempty"`
	InStock         *bool      `json:"inStock,omitempty"`
	Featured        *bool      `json:"featured,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
}

// ApplyTo copies the provided fields onto an existing book.
func (d UpdateBookDTO) ApplyTo(b *models.Book) {
	if d.Title != nil {
		b.Title = *d.Title
	}
	if d.Author != nil {
		b.Author = *d.Author
	}
	if d.Description != nil {
		b.Description = *d.Description
	}
	if d.Genre != nil {
		b.Genre = *d.Genre
	}
	if d.PublicationDate != nil {
		b.PublicationDate = *d.PublicationDate
	}
	if d.ISBN != nil {
		b.ISBN = *d.ISBN
	}
	if d.CoverImage != nil {
		b.CoverImage = *d.CoverImage
	}
	if d.Rating != nil {
		b.Rating = *d.Rating
	}
	if d.Price != nil {
		b.Price = *d.Price
	}
	if d.Pages != nil {
		b.Pages = *d.Pages
	}
	if d.Language != nil {
		b.Language = *d.Language
	}
	if d.Publisher != nil {
		b.Publisher = *d.Publisher
	}
	if d.InStock != nil {
		b.InStock = *d.InStock
	}
	if d.Featured != nil {
		b.Featured = *d.Featured
	}
	if d.Tags != nil {
		b.Tags = d.Tags
	}
}
