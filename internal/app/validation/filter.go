package validation

import "github.com/yigit/personnel/internal/app/models"

// Query keys understood by ParseEmployeeFilter.
const (
	FilterFullName      = "full_name"
	FilterMinSalary     = "min_salary"
	FilterMaxSalary     = "max_salary"
	FilterStartDateFrom = "start_date_from"
	FilterStartDateTo   = "start_date_to"
	FilterDepartmentID  = "department_id"
	FilterSkip          = "skip"
	FilterLimit         = "limit"
)

// ParseEmployeeFilter builds a listing filter from query input. Malformed
// values never fail: the predicate is simply left out. A missing or
// non-positive limit falls back to defaultLimit and a negative skip to 0.
func ParseEmployeeFilter(f Fields, defaultLimit int) models.EmployeeFilter {
	filter := models.EmployeeFilter{
		MinSalary:     ParseOptionalFloat(f[FilterMinSalary]),
		MaxSalary:     ParseOptionalFloat(f[FilterMaxSalary]),
		StartDateFrom: ParseOptionalDate(f[FilterStartDateFrom]),
		StartDateTo:   ParseOptionalDate(f[FilterStartDateTo]),
		DepartmentID:  ParseOptionalInt(f[FilterDepartmentID]),
	}

	if name, ok := f.Get(FilterFullName); ok {
		filter.NameSubstring = &name
	}

	filter.Skip, filter.Limit = ParseSkipLimit(f, defaultLimit)
	return filter
}

// ParseSkipLimit reads pagination parameters permissively.
func ParseSkipLimit(f Fields, defaultLimit int) (skip, limit int) {
	limit = defaultLimit
	if s := ParseOptionalInt(f[FilterSkip]); s != nil && *s > 0 {
		skip = int(*s)
	}
	if l := ParseOptionalInt(f[FilterLimit]); l != nil && *l > 0 {
		limit = int(*l)
	}
	return skip, limit
}
