package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"bookhub/internal/api/models"
	"bookhub/internal/config"
	"bookhub/internal/database"

	"gorm.io/gorm/clause"
)

type seedBook struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Description     string   `json:"description"`
	Genre           string   `json:"genre"`
	PublicationDate string   `json:"publicationDate"`
	ISBN            string   `json:"isbn"`
	CoverImage      string   `json:"coverImage"`
	Rating          float64  `json:"rating"`
	Price           float64  `json:"price"`
	Pages           int      `json:"pages"`
	Language        string   `json:"language"`
	Publisher       string   `json:"publisher"`
	InStock         bool     `json:"inStock"`
	Featured        bool     `json:"featured"`
	Tags            []string `json:"tags"`
}

// Seeds the catalog from a JSON file. Books whose ISBN already exists are
// skipped, so reruns are safe.
func main() {
	dataPath := flag.String("data", "data/books.json", "path to the seed JSON file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("load config failed", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("database setup failed", "error", err)
		os.Exit(1)
	}

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		logger.Error("read seed file failed", "path", *dataPath, "error", err)
		os.Exit(1)
	}

	var seeds []seedBook
	if err := json.Unmarshal(raw, &seeds); err != nil {
		logger.Error("parse seed file failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inserted := 0
	for _, s := range seeds {
		pub, err := time.Parse("2006-01-02", s.PublicationDate)
		if err != nil {
			logger.Error("bad publicationDate in seed entry", "title", s.Title, "error", err)
			os.Exit(1)
		}
		if !models.IsValidGenre(s.Genre) {
			logger.Error("bad genre in seed entry", "title", s.Title, "genre", s.Genre)
			os.Exit(1)
		}

		book := models.Book{
			Title:           s.Title,
			Author:          s.Author,
			Description:     s.Description,
			Genre:           s.Genre,
			PublicationDate: pub,
			ISBN:            s.ISBN,
			CoverImage:      s.CoverImage,
			Rating:          s.Rating,
			Price:           s.Price,
			Pages:           s.Pages,
			Language:        s.Language,
			Publisher:       s.Publisher,
			InStock:         s.InStock,
			Featured:        s.Featured,
			Tags:            s.Tags,
		}
		if book.CoverImage == "" {
			book.CoverImage = models.DefaultCoverImage
		}
		if book.Language == "" {
			book.Language = "English"
		}

		result := db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "isbn"}},
				DoNothing: true,
			}).
			Create(&book)
		if result.Error != nil {
			logger.Error("insert seed book failed", "title", s.Title, "error", result.Error)
			os.Exit(1)
		}
		if result.RowsAffected > 0 {
			inserted++
		}
	}

	fmt.Printf("seeded %d of %d books\n", inserted, len(seeds))
}
