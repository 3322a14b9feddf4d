package helpers

import (
	"math"

	"github.com/yigit/personnel/internal/app/models/dto"
)

// ClampWindow normalises a requested skip/limit pair. A non-positive limit
// falls back to defaultLimit and anything above maxLimit is cut down.
func ClampWindow(skip, limit, defaultLimit, maxLimit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO for a skip/limit window.
func NewPaginationInfo(totalItems int64, skip, limit int) dto.PaginationInfo {
	if limit <= 0 {
		limit = 1
	}
	if skip < 0 {
		skip = 0
	}

	totalPages := 1
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	return dto.PaginationInfo{
		Skip:        skip,
		Limit:       limit,
		TotalItems:  totalItems,
		CurrentPage: skip/limit + 1,
		TotalPages:  totalPages,
	}
}
