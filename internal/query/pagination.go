package query

// PageInfo describes an adjacent result page.
type PageInfo struct {
	Page  int `json:"page" example:"2"`
	Limit int `json:"limit" example:"15"`
}

// Pagination carries the next/prev page descriptors for a list response.
// Both fields are omitted on a single-page result, leaving an empty object.
type Pagination struct {
	Next *PageInfo `json:"next,omitempty"`
	Prev *PageInfo `json:"prev,omitempty"`
}

// Paginate computes the pagination envelope for a result window.
//
//	next is present iff page*limit < total
//	prev is present iff (page-1)*limit > 0
func Paginate(page, limit int, total int64) *Pagination {
	p := &Pagination{}

	startIndex := int64(page-1) * int64(limit)
	endIndex := int64(page) * int64(limit)

	if endIndex < total {
		p.Next = &PageInfo{Page: page + 1, Limit: limit}
	}
	if startIndex > 0 {
		p.Prev = &PageInfo{Page: page - 1, Limit: limit}
	}

	return p
}

// Skip returns the number of documents to skip for the requested page.
func (q *ListQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}
