package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// BookFilter is the typed query specification built from request parameters.
// Optional numeric bounds are pointers so "absent" and "zero" stay distinct;
// there is no catch-all map anywhere in the query path.
type BookFilter struct {
	Genre     string
	Author    string
	MinRating *float64
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string // validated column name, empty means default ordering
	SortDesc  bool
}

// OrderClause renders the filter's sort specification. Default ordering is
// newest first.
func (f BookFilter) OrderClause() string {
	if f.SortBy == "" {
		return "created_at DESC"
	}
	if f.SortDesc {
		return f.SortBy + " DESC"
	}
	return f.SortBy + " ASC"
}

// sortColumns whitelists the client-facing sort keys against real columns, so
// a sortBy value can never reach the query as raw text.
var sortColumns = map[string]string{
	"title":           "title",
	"author":          "author",
	"price":           "price",
	"rating":          "rating",
	"pages":           "pages",
	"publicationDate": "publication_date",
	"createdAt":       "created_at",
}

// ParseBookFilter builds a BookFilter from the listing query parameters.
// Numeric filter values must parse: a garbled minPrice is rejected with an
// error instead of being silently dropped, so the caller can 400 it.
func ParseBookFilter(c *gin.Context) (BookFilter, error) {
	var f BookFilter

	f.Genre = strings.TrimSpace(c.Query("genre"))
	f.Author = strings.TrimSpace(c.Query("author"))

	var err error
	if f.MinRating, err = parseOptionalFloat(c, "minRating"); err != nil {
		return f, err
	}
	if f.MinPrice, err = parseOptionalFloat(c, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parseOptionalFloat(c, "maxPrice"); err != nil {
		return f, err
	}
	if f.MinRating != nil && (*f.MinRating < 0 || *f.MinRating > 5) {
		return f, fmt.Errorf("minRating must be between 0 and 5")
	}

	if sortBy := strings.TrimSpace(c.Query("sortBy")); sortBy != "" {
		column, ok := sortColumns[sortBy]
		if !ok {
			return f, fmt.Errorf("invalid sortBy, must be one of: %s", strings.Join(sortKeys(), ", "))
		}
		f.SortBy = column
		f.SortDesc = c.Query("sortOrder") == "desc"
	}

	return f, nil
}

func parseOptionalFloat(c *gin.Context, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter, must be a number", key)
	}
	return &v, nil
}

func sortKeys() []string {
	keys := make([]string, 0, len(sortColumns))
	for k := range sortColumns {
		keys = append(keys, k)
	}
	return keys
}
