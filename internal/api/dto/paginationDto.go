package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// PageQuery carries validated pagination parameters. Limit is always >= 1.
type PageQuery struct {
	Page  int
	Limit int
}

func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePageQuery reads page/limit with lenient fallbacks: non-numeric or
// out-of-range values become the defaults rather than an error, and limit is
// capped so a single request cannot drag the whole table.
func ParsePageQuery(c *gin.Context) PageQuery {
	q := PageQuery{Page: DefaultPage, Limit: DefaultLimit}

	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			q.Page = parsed
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			q.Limit = parsed
		}
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}
