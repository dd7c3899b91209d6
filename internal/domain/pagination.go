package domain

// Page is the paginated collection envelope returned by the backend.
type Page[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Normalize enforces the requested page size on Data and derives
// TotalPages from Total and that size. The backend's echoed limit is only
// used when no size was requested.
func (p *Page[T]) Normalize(page, limit int) {
	if p.Page < 1 {
		p.Page = page
	}
	if limit >= 1 {
		p.Limit = limit
	}
	if p.Data == nil {
		p.Data = []T{}
	}
	if p.Limit >= 1 && len(p.Data) > p.Limit {
		p.Data = p.Data[:p.Limit]
	}
	if p.Total < len(p.Data) {
		p.Total = len(p.Data)
	}
	p.TotalPages = TotalPages(p.Total, p.Limit)
}

// TotalPages is ceil(total / limit).
func TotalPages(total, limit int) int {
	if limit < 1 || total < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}
