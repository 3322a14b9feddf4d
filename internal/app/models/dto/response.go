package dto

import "time"

// APIResponse is the envelope of every JSON API response
type APIResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

// NewAPIResponse wraps data in a successful envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// WithPagination attaches listing metadata to the envelope
func (r APIResponse) WithPagination(p PaginationInfo) APIResponse {
	r.Pagination = &p
	return r
}

// PaginationInfo describes one skip/limit window over a result set
type PaginationInfo struct {
	Skip        int   `json:"skip"`
	Limit       int   `json:"limit"`
	TotalItems  int64 `json:"totalItems"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

// HasPrev reports whether a window exists before this one
func (p PaginationInfo) HasPrev() bool {
	return p.Skip > 0
}

// HasNext reports whether rows remain after this window
func (p PaginationInfo) HasNext() bool {
	return int64(p.Skip+p.Limit) < p.TotalItems
}

// PrevSkip is the skip value of the previous window
func (p PaginationInfo) PrevSkip() int {
	return max(p.Skip-p.Limit, 0)
}

// NextSkip is the skip value of the next window
func (p PaginationInfo) NextSkip() int {
	return p.Skip + p.Limit
}
