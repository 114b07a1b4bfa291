package models

import "time"

// DefaultCoverImage is used when a book is created without a cover URL.
const DefaultCoverImage = "https://via.placeholder.com/200x300?text=No+Cover"

type Book struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string    `json:"title" gorm:"size:200;not null"`
	Author          string    `json:"author" gorm:"size:100;not null;index"`
	Description     string    `json:"description" gorm:"size:1000;not null"`
	Genre           string    `json:"genre" gorm:"size:50;not null;index"`
	PublicationDate time.Time `json:"publicationDate" gorm:"not null"`
	ISBN            string    `json:"isbn" gorm:"column:isbn;uniqueIndex;size:20;not null"`
	CoverImage      string    `json:"coverImage" gorm:"default:'https://via.placeholder.com/200x300?text=No+Cover'"`
	Rating          float64   `json:"rating" gorm:"default:0;check:rating >= 0 AND rating <= 5"`
	Price           float64   `json:"price" gorm:"not null;check:price >= 0"`
	Pages           int       `json:"pages" gorm:"not null;check:pages >= 1"`
	Language        string    `json:"language" gorm:"default:'English'"`
	Publisher       string    `json:"publisher" gorm:"not null"`
	InStock         bool      `json:"inStock" gorm:"default:true"`
	Featured        bool      `json:"featured" gorm:"default:false"`
	Tags            []string  `json:"tags" gorm:"serializer:json"`
	CreatedAt       time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Book) TableName() string {
	return "books"
}
