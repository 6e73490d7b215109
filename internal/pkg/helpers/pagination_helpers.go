package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/workload/internal/app/models/dto"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1 // pages are 1-based
)

func normalizePage(page int) int {
	if page < 1 {
		return DefaultPage
	}
	return page
}

func normalizeSize(size int) int {
	if size < 1 || size > MaxPageSize {
		return DefaultPageSize
	}
	return size
}

// CalculateOffsetLimit turns a 1-based page and a page size into SQL OFFSET and LIMIT values.
// Out-of-range inputs fall back to the defaults.
func CalculateOffsetLimit(page, size int) (offset uint64, limit int) {
	limit = normalizeSize(size)
	offset = uint64(normalizePage(page)-1) * uint64(limit)
	return offset, limit
}

// NewPaginationInfo describes page out of totalItems. There is always at least
// one page, and the current page is clamped to the last one.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	size = normalizeSize(size)

	totalPages := 1
	if totalItems > 0 {
		totalPages = int((totalItems + int64(size) - 1) / int64(size))
	}

	return dto.PaginationInfo{
		CurrentPage: min(normalizePage(page), totalPages),
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams reads the page and size query parameters
func ParsePaginationParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.Query("page"))
	size, _ = strconv.Atoi(c.Query("size"))
	return normalizePage(page), normalizeSize(size)
}
