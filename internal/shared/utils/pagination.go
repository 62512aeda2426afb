package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bulletin/internal/shared/constants"
	"bulletin/internal/shared/errors"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the row offset of the first item on the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ValidatePagination rejects non-positive values and clamps page size to MaxPageSize.
func ValidatePagination(page, pageSize int) (Pagination, error) {
	if page < 1 {
		return Pagination{}, errors.NewValidationError("invalid pagination", "page must be >= 1")
	}
	if pageSize < 1 {
		return Pagination{}, errors.NewValidationError("invalid pagination", "page_size must be >= 1")
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}, nil
}

// ParsePagination parses page and page_size from the query string.
// Absent parameters take their defaults; present but malformed or
// non-positive parameters are a validation error.
func ParsePagination(c *gin.Context) (Pagination, error) {
	page, err := parseQueryInt(c, "page", constants.DefaultPage)
	if err != nil {
		return Pagination{}, err
	}
	pageSize, err := parseQueryInt(c, "page_size", constants.DefaultPageSize)
	if err != nil {
		return Pagination{}, err
	}
	return ValidatePagination(page, pageSize)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	val, ok := c.GetQuery(key)
	if !ok {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, errors.NewValidationError("invalid pagination", key+" must be an integer")
	}
	return n, nil
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
