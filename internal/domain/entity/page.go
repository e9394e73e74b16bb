package entity

// Sortable fields shared by marker and alert listings.
const (
	SortFieldID        = "id"
	SortFieldTitle     = "title"
	SortFieldIntensity = "intensity"
	SortFieldRadius    = "radius"
)

// Sort orders a listing by one field.
type Sort struct {
	Field      string
	Descending bool
}

// Pageable is an offset/limit page request. Page is zero-based.
type Pageable struct {
	Page int
	Size int
	Sort Sort
}

// Offset returns the number of rows skipped before the page.
func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// IntensityFilter restricts a listing to one intensity label. An empty
// Intensity applies no restriction.
type IntensityFilter struct {
	Intensity string
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NewPage builds a Page from the rows of one request and the total row count.
func NewPage[T any](content []T, pageable Pageable, total int64) *Page[T] {
	totalPages := 0
	if pageable.Size > 0 {
		totalPages = int((total + int64(pageable.Size) - 1) / int64(pageable.Size))
	}

	return &Page[T]{
		Content:       content,
		Page:          pageable.Page,
		Size:          pageable.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
