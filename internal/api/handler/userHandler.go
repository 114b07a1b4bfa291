package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"bookhub/internal/api/dto"
	"bookhub/internal/api/middleware"
	"bookhub/internal/api/response"
	"bookhub/internal/api/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the per-user book lists and reviews.
type UserHandler struct {
	favorites service.FavoritesService
	wishlist  service.WishlistService
	reviews   service.ReviewService
	logger    *slog.Logger
}

func NewUserHandler(
	favorites service.FavoritesService,
	wishlist service.WishlistService,
	reviews service.ReviewService,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{favorites: favorites, wishlist: wishlist, reviews: reviews, logger: logger}
}

// RegisterRoutes mounts the user endpoints. Reading a book's reviews is
// public; everything else belongs to the authenticated user.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.GET("/reviews/:bookId", h.GetBookReviews)

		users.POST("/favorites/:bookId", requireAuth, h.AddFavorite)
		users.DELETE("/favorites/:bookId", requireAuth, h.RemoveFavorite)
		users.GET("/favorites", requireAuth, h.ListFavorites)

		users.POST("/wishlist/:bookId", requireAuth, h.AddToWishlist)
		users.DELETE("/wishlist/:bookId", requireAuth, h.RemoveFromWishlist)
		users.GET("/wishlist", requireAuth, h.ListWishlist)

		users.POST("/reviews/:bookId", requireAuth, h.AddReview)
	}
}

func parseBookIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "Invalid book ID")
		return 0, false
	}
	return id, true
}

func (h *UserHandler) mustUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return "", false
	}
	return userID, true
}

func (h *UserHandler) AddFavorite(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}
	bookID, ok := parseBookIDParam(c)
	if !ok {
		return
	}

	ids, err := h.favorites.Add(c.Request.Context(), userID, bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			response.NotFound(c, "Book not found")
		case errors.Is(err, service.ErrAlreadyInFavorites):
			response.BadRequest(c, "Book already in favorites")
		default:
			h.logger.Error("add favorite failed", "user", userID, "book", bookID, "error", err)
			response.Internal(c, "Failed to add book to favorites")
		}
		return
	}
	response.MessageWithData(c, "Book added to favorites", ids)
}

func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}
	bookID, ok := parseBookIDParam(c)
	if !ok {
		return
	}

	ids, err := h.favorites.Remove(c.Request.Context(), userID, bookID)
	if err != nil {
		h.logger.Error("remove favorite failed", "user", userID, "book", bookID, "error", err)
		response.Internal(c, "Failed to remove book from favorites")
		return
	}
	response.MessageWithData(c, "Book removed from favorites", ids)
}

func (h *UserHandler) ListFavorites(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	books, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list favorites failed", "user", userID, "error", err)
		response.Internal(c, "Failed to fetch favorites")
		return
	}
	response.WithTotal(c, books, int64(len(books)))
}

func (h *UserHandler) AddToWishlist(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}
	bookID, ok := parseBookIDParam(c)
	if !ok {
		return
	}

	ids, err := h.wishlist.Add(c.Request.Context(), userID, bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			response.NotFound(c, "Book not found")
		case errors.Is(err, service.ErrAlreadyInWishlist):
			response.BadRequest(c, "Book already in wishlist")
		default:
			h.logger.Error("add to wishlist failed", "user", userID, "book", bookID, "error", err)
			response.Internal(c, "Failed to add book to wishlist")
		}
		return
	}
	response.MessageWithData(c, "Book added to wishlist", ids)
}

func (h *UserHandler) RemoveFromWishlist(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}
	bookID, ok := parseBookIDParam(c)
	if !ok {
		return
	}

	ids, err := h.wishlist.Remove(c.Request.Context(), userID, bookID)
	if err != nil {
		h.logger.Error("remove from wishlist failed", "user", userID, "book", bookID, "error", err)
		response.Internal(c, "Failed to remove book from wishlist")
		return
	}
	response.MessageWithData(c, "Book removed from wishlist", ids)
}

func (h *UserHandler) ListWishlist(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}

	books, err := h.wishlist.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list wishlist failed", "user", userID, "error", err)
		response.Internal(c, "Failed to fetch wishlist")
		return
	}
	response.WithTotal(c, books, int64(len(books)))
}

// AddReview handles POST /api/users/reviews/:bookId. Submitting twice for
// the same book replaces the earlier review.
func (h *UserHandler) AddReview(c *gin.Context) {
	userID, ok := h.mustUserID(c)
	if !ok {
		return
	}
	bookID, ok := parseBookIDParam(c)
	if !ok {
		return
	}

	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Rating must be between 1 and 5")
		return
	}

	mine, err := h.reviews.AddOrUpdate(c.Request.Context(), userID, bookID, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		h.logger.Error("add review failed", "user", userID, "book", bookID, "error", err)
		response.Internal(c, "Failed to add review")
		return
	}
	response.MessageWithData(c, "Review added successfully", mine)
}

// GetBookReviews handles GET /api/users/reviews/:bookId. Public: no token
// needed to read a book's reviews.
func (h *UserHandler) GetBookReviews(c *gin.Context) {
	bookID, ok := parseBookIDParam(c)
	if !ok {
		return
	}

	agg, err := h.reviews.GetBookReviews(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		h.logger.Error("get book reviews failed", "book", bookID, "error", err)
		response.Internal(c, "Failed to fetch reviews")
		return
	}
	response.OK(c, agg)
}
