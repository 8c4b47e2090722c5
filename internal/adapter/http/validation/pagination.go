package validation

import (
	"errors"
	"math"

	"github.com/gin-gonic/gin"
)

const MaxPageSize = 100

var ErrInvalidPagination = errors.New("invalid pagination")

type pageQuery struct {
	Page *int64 `form:"page"`
	Size *int64 `form:"size"`
}

// ParsePage reads page and size from the query string. page defaults to 0
// and size to defaultSize; page must not be negative and size must be in
// 1..MaxPageSize.
func ParsePage(c *gin.Context, defaultSize int64) (page, size int64, err error) {
	var query pageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return 0, 0, ErrInvalidPagination
	}

	size = defaultSize
	if query.Page != nil {
		page = *query.Page
	}
	if query.Size != nil {
		size = *query.Size
	}

	if page < 0 || size <= 0 || size > MaxPageSize || page > math.MaxInt64/size {
		return 0, 0, ErrInvalidPagination
	}
	return page, size, nil
}
