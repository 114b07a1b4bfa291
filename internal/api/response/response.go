package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response wrapper shared by every endpoint.
// Data, Errors, Pagination and TotalResults are omitted when unused.
type Envelope struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message,omitempty"`
	Data         interface{} `json:"data,omitempty"`
	Errors       []string    `json:"errors,omitempty"`
	TotalResults *int64      `json:"totalResults,omitempty"`
	Pagination   *Pagination `json:"pagination,omitempty"`
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Message sends a 200 envelope with only a message (delete confirmations).
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// MessageWithData sends a 200 envelope carrying both a message and data
// (the favorites/wishlist mutators return the refreshed list this way).
func MessageWithData(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Paginated sends a 200 envelope with pagination metadata.
func Paginated(c *gin.Context, data interface{}, p Pagination) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Pagination: &p})
}

// SearchResults sends a 200 envelope with a totalResults count and, when
// non-nil, pagination metadata.
func SearchResults(c *gin.Context, data interface{}, total int64, p *Pagination) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, TotalResults: &total, Pagination: p})
}

// WithTotal sends a 200 envelope with only a totalResults count
// (unpaginated genre/author listings).
func WithTotal(c *gin.Context, data interface{}, total int64) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, TotalResults: &total})
}

func fail(c *gin.Context, status int, message string, errs []string) {
	c.JSON(status, Envelope{Success: false, Message: message, Errors: errs})
}

// BadRequest covers malformed identifiers, bad query parameters and
// duplicate-entry conflicts (the taxonomy maps Conflict to 400).
func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message, nil)
}

// ValidationFailed sends a 400 with field-level messages.
func ValidationFailed(c *gin.Context, message string, errs []string) {
	fail(c, http.StatusBadRequest, message, errs)
}

func NotFound(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, message, nil)
}

func Unauthorized(c *gin.Context, message string) {
	fail(c, http.StatusUnauthorized, message, nil)
}

func TooManyRequests(c *gin.Context, message string) {
	fail(c, http.StatusTooManyRequests, message, nil)
}

// Internal sends a 500 with a generic message. The underlying error is never
// exposed to the client; callers log it instead.
func Internal(c *gin.Context, message string) {
	fail(c, http.StatusInternalServerError, message, nil)
}
