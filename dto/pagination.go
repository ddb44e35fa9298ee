package dto

// Pagination carries the page/pageSize pair shared by all list filters
type Pagination struct {
	Page     int
	PageSize int
}

// Normalize clamps pagination to sane defaults
func (p *Pagination) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// ListMeta describes the page of a list response
type ListMeta struct {
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewListMeta derives the response metadata for a page
func NewListMeta(totalCount int64, page, pageSize int) ListMeta {
	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	return ListMeta{
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
