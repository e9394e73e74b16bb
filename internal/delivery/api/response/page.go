package response

import "ayra/internal/domain/entity"

// PageResponse is the JSON form of a result page.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPageResponse maps every element of page with fn.
func NewPageResponse[E, T any](page *entity.Page[E], fn func(E) T) *PageResponse[T] {
	content := make([]T, 0, len(page.Content))
	for _, item := range page.Content {
		content = append(content, fn(item))
	}

	return &PageResponse[T]{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}
