package domain

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page.
// Page is 0-based: Offset is Page * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page * p.PageSize
}
