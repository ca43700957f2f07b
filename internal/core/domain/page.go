package domain

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPageNumber keeps Offset far from int overflow.
	MaxPageNumber = 1_000_000
)

// Page is a 1-based page request.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps p into the supported range.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Number > MaxPageNumber {
		p.Number = MaxPageNumber
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset returns the number of rows to skip. p must be normalised.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PageResult is one page of a listing plus the total row count.
type PageResult[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
	Total int64 `json:"total"`
}
