package models

// Sort columns accepted by the supply list endpoint.
const (
	SortByName     = "name"
	SortByQuantity = "quantity"
	SortByUpdated  = "updated"
)

// Sort directions accepted by the supply list endpoint.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultPageSize is the number of supplies per page when the client does
// not ask for a specific page size.
const DefaultPageSize = 10

// SupplyQuery carries the search, filter, sort, and pagination parameters of
// a supply list request. The zero value means "everything, first page,
// sorted by name ascending".
type SupplyQuery struct {
	// Q is a case-insensitive substring matched against name, category,
	// and joined tags.
	Q string `json:"q,omitempty"`

	// Categories restricts results to the given categories (exact match).
	Categories []string `json:"categories,omitempty"`

	// Units restricts results to the given units (exact match).
	Units []string `json:"units,omitempty"`

	// Color is a case-insensitive substring matched against the color field.
	Color string `json:"color,omitempty"`

	// Tag is a case-insensitive substring matched against the joined tags.
	Tag string `json:"tag,omitempty"`

	// SortBy is one of SortByName, SortByQuantity, SortByUpdated.
	SortBy string `json:"sort_by,omitempty"`

	// SortDir is SortAsc or SortDesc.
	SortDir string `json:"sort_dir,omitempty"`

	// Page is the zero-based page index.
	Page int `json:"page,omitempty"`

	// PageSize is the number of items per page. Zero means DefaultPageSize.
	PageSize int `json:"page_size,omitempty"`
}

// Normalize fills in defaults and clamps out-of-range values so that every
// consumer of the query sees the same canonical form.
func (q *SupplyQuery) Normalize() {
	if q.SortBy != SortByQuantity && q.SortBy != SortByUpdated {
		q.SortBy = SortByName
	}
	if q.SortDir != SortDesc {
		q.SortDir = SortAsc
	}
	if q.Page < 0 {
		q.Page = 0
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
}

// SupplyList is the paginated response of the supply list endpoint.
type SupplyList struct {
	// Items is the current page of supplies.
	Items []Supply `json:"items"`

	// Total is the number of supplies matching the query across all pages.
	Total int `json:"total"`

	// Page is the zero-based index of the returned page.
	Page int `json:"page"`

	// PageSize is the page size the response was built with.
	PageSize int `json:"page_size"`
}

// Conversion is the response of the unit conversion endpoint.
type Conversion struct {
	// Value is the input amount.
	Value float64 `json:"value"`

	// From is the input unit.
	From string `json:"from"`

	// To is the output unit.
	To string `json:"to"`

	// Result is Value expressed in To.
	Result float64 `json:"result"`
}
