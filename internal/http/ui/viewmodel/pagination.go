package viewmodel

// Pagination contains pagination metadata for list views.
type Pagination struct {
	Page       int
	PageSize   int
	HasPrev    bool
	HasNext    bool
	StartIndex int
	EndIndex   int
	PrevURL    string
	NextURL    string
}

// Empty reports whether the current page shows no rows.
func (p Pagination) Empty() bool { return p.EndIndex == 0 }
