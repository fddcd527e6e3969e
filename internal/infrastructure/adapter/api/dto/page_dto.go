package dto

import "github.com/amirhossein-jamali/raffle-service/internal/domain/entity"

// PageQuery binds the pagination query parameters
type PageQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1,max=200"`
}

// Pagination converts the query into a domain pagination
func (q PageQuery) Pagination() entity.Pagination {
	return entity.Pagination{Page: q.Page, PageSize: q.PageSize}.Normalize()
}

// PageResponse is one page of a listing
type PageResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPageResponse maps every item of a domain page
func NewPageResponse[E, T any](page entity.Page[E], mapItem func(E) T) PageResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapItem(item))
	}
	return PageResponse[T]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(),
	}
}

// MapSlice maps a slice of domain values
func MapSlice[E, T any](items []E, mapItem func(E) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, mapItem(item))
	}
	return out
}
