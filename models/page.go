package models

import "fmt"

// Pagination limits. A page number starts at 1.
const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Params selects a window of a result set.
type Params struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// DefaultParams returns the first page with the default size.
func DefaultParams() Params {
	return Params{Page: DefaultPage, Size: DefaultPageSize}
}

// Validate checks that the page is positive and the size is within
// 1..[MaxPageSize].
func (p Params) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be greater than or equal to 1", ErrInvalidPagination)
	}
	if p.Size < 1 || p.Size > MaxPageSize {
		return fmt.Errorf("%w: size must be between 1 and %d", ErrInvalidPagination, MaxPageSize)
	}
	return nil
}

// Offset is the number of rows preceding the page.
func (p Params) Offset() uint64 {
	return uint64(p.Page-1) * uint64(p.Size)
}

// Limit is the maximum number of rows in the page.
func (p Params) Limit() uint64 {
	return uint64(p.Size)
}

// Page is an ordered window of entities plus pagination metadata.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
}

// NewPage assembles a page from its items and the size of the full result set.
func NewPage[T any](items []T, total int64, params Params) Page[T] {
	if items == nil {
		items = []T{}
	}

	pages := 0
	if params.Size > 0 {
		pages = int((total + int64(params.Size) - 1) / int64(params.Size))
	}

	return Page[T]{
		Items: items,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: pages,
	}
}

// MapPage converts every item of p with f, keeping the metadata.
func MapPage[T, R any](p Page[T], f func(T) R) Page[R] {
	items := make([]R, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, f(item))
	}
	return Page[R]{
		Items: items,
		Total: p.Total,
		Page:  p.Page,
		Size:  p.Size,
		Pages: p.Pages,
	}
}
