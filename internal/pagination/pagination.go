// Package pagination computes bounded-memory page slices with metadata over
// already-filtered, already-sorted result sets.
package pagination

import (
	"fmt"

	"lexvault/internal/domain"
)

// MaxPageSize caps how many items a single page may request.
const MaxPageSize = 500

// Params carries the caller's 1-based page request. Callers must reject
// invalid params (Validate) before querying; nothing here clamps silently.
type Params struct {
	Page     int
	PageSize int
}

// Validate rejects non-positive or oversized page parameters.
func (p Params) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", domain.ErrInvalidInput, p.Page)
	}
	if p.PageSize < 1 {
		return fmt.Errorf("%w: page size must be >= 1, got %d", domain.ErrInvalidInput, p.PageSize)
	}
	if p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page size must be <= %d, got %d", domain.ErrInvalidInput, MaxPageSize, p.PageSize)
	}
	return nil
}

// Offset returns the row offset for the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the row limit for the requested page.
func (p Params) Limit() int {
	return p.PageSize
}

// Page is one materialized slice of a larger result set. Items holds only
// the requested page, never the full set.
type Page[T any] struct {
	Items       []T  `json:"items"`
	TotalCount  int  `json:"total_count"`
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// NewPage wraps one page of items with count and navigation metadata.
func NewPage[T any](items []T, totalCount int, p Params) Page[T] {
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + p.PageSize - 1) / p.PageSize
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		TotalCount:  totalCount,
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		TotalPages:  totalPages,
		HasNext:     p.Page < totalPages,
		HasPrevious: p.Page > 1,
	}
}
