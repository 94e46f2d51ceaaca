package response

// Pagination is attached to list envelopes next to data.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
	TotalPages  int64 `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination describes page (1-based) of total items split by limit.
func NewPagination(page, limit int, total int64) *Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	pages := (total + int64(limit) - 1) / int64(limit)
	return &Pagination{
		CurrentPage: page,
		Limit:       limit,
		TotalPages:  pages,
		TotalItems:  total,
		HasNext:     int64(page)*int64(limit) < total,
		HasPrev:     page > 1,
	}
}
