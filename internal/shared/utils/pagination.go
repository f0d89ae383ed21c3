package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusdesk/internal/shared/constants"
)

// ValidatePagination normalizes pagination parameters. Page defaults to
// DefaultPage, PageSize defaults to DefaultPageSize and is capped at
// MaxPageSize.
func ValidatePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = constants.DefaultPage
	}

	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return page, pageSize
}

// ParsePagination reads page and page_size from the query string with
// defaults applied.
func ParsePagination(c *gin.Context) (int, int) {
	return ValidatePagination(
		parseQueryInt(c, "page", constants.DefaultPage),
		parseQueryInt(c, "page_size", constants.DefaultPageSize),
	)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages == 0 {
		return 1
	}
	return pages
}
