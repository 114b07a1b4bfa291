package service

import (
	"errors"
	"strings"
)

var (
	ErrBookNotFound       = errors.New("book not found")
	ErrDuplicateISBN      = errors.New("a book with this ISBN already exists")
	ErrAlreadyInFavorites = errors.New("book already in favorites")
	ErrAlreadyInWishlist  = errors.New("book already in wishlist")
)

// ValidationError collects field-level messages so handlers can return them
// all at once instead of failing on the first bad field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// AsValidationError extracts a *ValidationError if err carries one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
