package service

import "math"

// PagedResult is one page of a listing plus the totals clients need to
// render pagination.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

func newPagedResult[T any](items []T, page, size int, total int64) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:      items,
		PageNumber: page,
		PageSize:   size,
		TotalCount: total,
		TotalPages: int(math.Ceil(float64(total) / float64(size))),
	}
}
