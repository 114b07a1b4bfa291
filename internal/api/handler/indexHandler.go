package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index handles GET / with a short directory of the API surface.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Book Hub API",
		"endpoints": gin.H{
			"books":     "/api/books",
			"search":    "/api/books/search?q=term",
			"byGenre":   "/api/books/genre/:genre",
			"byAuthor":  "/api/books/author/:author",
			"auth":      "/api/auth",
			"favorites": "/api/users/favorites",
			"wishlist":  "/api/users/wishlist",
			"reviews":   "/api/users/reviews/:bookId",
		},
	})
}

// Health handles GET /health for liveness checks.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
