package dto

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/books?"+rawQuery, nil)
	return c
}

func TestParseBookFilter_ValidBounds(t *testing.T) {
	c := queryContext("genre=Fantasy&author=hale&minRating=4&minPrice=10&maxPrice=20")

	f, err := ParseBookFilter(c)
	assert.NoError(t, err)
	assert.Equal(t, "Fantasy", f.Genre)
	assert.Equal(t, "hale", f.Author)
	assert.Equal(t, 4.0, *f.MinRating)
	assert.Equal(t, 10.0, *f.MinPrice)
	assert.Equal(t, 20.0, *f.MaxPrice)
}

func TestParseBookFilter_AbsentBoundsStayNil(t *testing.T) {
	c := queryContext("genre=Fantasy")

	f, err := ParseBookFilter(c)
	assert.NoError(t, err)
	assert.Nil(t, f.MinRating)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
}

func TestParseBookFilter_RejectsGarbledNumber(t *testing.T) {
	c := queryContext("minPrice=cheap")

	_, err := ParseBookFilter(c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "minPrice")
}

func TestParseBookFilter_RejectsOutOfRangeMinRating(t *testing.T) {
	c := queryContext("minRating=7")

	_, err := ParseBookFilter(c)
	assert.Error(t, err)
}

func TestParseBookFilter_SortByWhitelist(t *testing.T) {
	c := queryContext("sortBy=publicationDate&sortOrder=desc")

	f, err := ParseBookFilter(c)
	assert.NoError(t, err)
	assert.Equal(t, "publication_date DESC", f.OrderClause())
}

func TestParseBookFilter_RejectsUnknownSortBy(t *testing.T) {
	c := queryContext("sortBy=isbn")

	_, err := ParseBookFilter(c)
	assert.Error(t, err)
}

func TestOrderClause_Defaults(t *testing.T) {
	assert.Equal(t, "created_at DESC", BookFilter{}.OrderClause())
	assert.Equal(t, "price ASC", BookFilter{SortBy: "price"}.OrderClause())
}

func TestParsePageQuery_Defaults(t *testing.T) {
	q := ParsePageQuery(queryContext(""))
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
}

func TestParsePageQuery_LenientFallbacks(t *testing.T) {
	q := ParsePageQuery(queryContext("page=banana&limit=-5"))
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
}

func TestParsePageQuery_CapsLimit(t *testing.T) {
	q := ParsePageQuery(queryContext("page=3&limit=500"))
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, MaxLimit, q.Limit)
}

func TestPageQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, PageQuery{Page: 1, Limit: 12}.Offset())
	assert.Equal(t, 24, PageQuery{Page: 3, Limit: 12}.Offset())
}
