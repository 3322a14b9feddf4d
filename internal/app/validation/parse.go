package validation

import (
	"math"
	"strconv"
	"strings"
	"time"

	rules "github.com/yigit/personnel/internal/pkg/validation"
)

// ParseOptionalDate returns nil for empty input or anything that is not a
// YYYY-MM-DD calendar date. It never fails.
func ParseOptionalDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	t, err := time.Parse(rules.DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// ParseOptionalInt returns nil for empty input or anything that is not a
// base-10 integer.
func ParseOptionalInt(raw string) *int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ParseOptionalFloat returns nil for empty input or anything that is not a
// finite decimal number.
func ParseOptionalFloat(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}
