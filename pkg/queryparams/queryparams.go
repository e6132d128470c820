package queryparams

// DefaultPerPage matches the appointment listing contract: at most 20
// rows per page.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ListParams carries pagination for list endpoints. Page is 1-indexed.
type ListParams struct {
	Page    int
	PerPage int
}

// Validate clamps out-of-range values to the defaults.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 || p.PerPage > MaxPerPage {
		p.PerPage = DefaultPerPage
	}
}

// Offset returns the SQL offset for the current page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages returns the page count for a total row count.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalItems) / perPage
	if int(totalItems)%perPage != 0 {
		pages++
	}
	return pages
}
