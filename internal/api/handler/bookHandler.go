package handler

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"bookhub/internal/api/dto"
	"bookhub/internal/api/response"
	"bookhub/internal/api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	books  service.BookService
	logger *slog.Logger
}

func NewBookHandler(books service.BookService, logger *slog.Logger) *BookHandler {
	return &BookHandler{books: books, logger: logger}
}

// RegisterRoutes mounts the catalog endpoints. Reads are public; writes
// require authentication.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	books := rg.Group("/books")
	{
		books.GET("", h.List)
		books.GET("/search", h.Search)
		books.GET("/genre/:genre", h.ByGenre)
		books.GET("/author/:author", h.ByAuthor)
		books.GET("/:id", h.Get)

		books.POST("", requireAuth, h.Create)
		books.PUT("/:id", requireAuth, h.Update)
		books.DELETE("/:id", requireAuth, h.Delete)
	}
}

func parseBookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "Invalid book ID")
		return 0, false
	}
	return id, true
}

// List handles GET /api/books with filtering, sorting and pagination.
func (h *BookHandler) List(c *gin.Context) {
	filter, err := dto.ParseBookFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	page := dto.ParsePageQuery(c)

	books, total, err := h.books.List(c.Request.Context(), filter, page)
	if err != nil {
		h.logger.Error("list books failed", "error", err)
		response.Internal(c, "Failed to fetch books")
		return
	}
	response.Paginated(c, books, response.NewPagination(page.Page, page.Limit, total))
}

// Get handles GET /api/books/:id.
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := h.books.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		h.logger.Error("get book failed", "id", id, "error", err)
		response.Internal(c, "Failed to fetch book")
		return
	}
	response.OK(c, book)
}

// Search handles GET /api/books/search?q=. The query term is mandatory and
// search does not combine with the listing filters.
func (h *BookHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "Search query is required")
		return
	}
	page := dto.ParsePageQuery(c)

	books, total, err := h.books.Search(c.Request.Context(), query, page)
	if err != nil {
		h.logger.Error("search books failed", "query", query, "error", err)
		response.Internal(c, "Failed to search books")
		return
	}
	p := response.NewPagination(page.Page, page.Limit, total)
	response.SearchResults(c, books, total, &p)
}

// ByGenre handles GET /api/books/genre/:genre.
func (h *BookHandler) ByGenre(c *gin.Context) {
	genre := c.Param("genre")

	books, err := h.books.ByGenre(c.Request.Context(), genre)
	if err != nil {
		h.logger.Error("books by genre failed", "genre", genre, "error", err)
		response.Internal(c, "Failed to fetch books by genre")
		return
	}
	response.WithTotal(c, books, int64(len(books)))
}

// ByAuthor handles GET /api/books/author/:author.
func (h *BookHandler) ByAuthor(c *gin.Context) {
	author := c.Param("author")

	books, err := h.books.ByAuthor(c.Request.Context(), author)
	if err != nil {
		h.logger.Error("books by author failed", "author", author, "error", err)
		response.Internal(c, "Failed to fetch books by author")
		return
	}
	response.WithTotal(c, books, int64(len(books)))
}

// Create handles POST /api/books.
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	book, err := h.books.Create(c.Request.Context(), req)
	if err != nil {
		h.writeBookError(c, err, "create book failed")
		return
	}
	response.Created(c, book)
}

// Update handles PUT /api/books/:id with partial updates.
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	book, err := h.books.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeBookError(c, err, "update book failed")
		return
	}
	response.OK(c, book)
}

// Delete handles DELETE /api/books/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		h.logger.Error("delete book failed", "id", id, "error", err)
		response.Internal(c, "Failed to delete book")
		return
	}
	response.Message(c, "Book deleted successfully")
}

func (h *BookHandler) writeBookError(c *gin.Context, err error, logMsg string) {
	if ve, ok := service.AsValidationError(err); ok {
		response.ValidationFailed(c, "Validation failed", ve.Fields)
		return
	}
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		response.NotFound(c, "Book not found")
	case errors.Is(err, service.ErrDuplicateISBN):
		response.BadRequest(c, "A book with this ISBN already exists")
	default:
		h.logger.Error(logMsg, "error", err)
		response.Internal(c, "Something went wrong")
	}
}
