package httpx

import (
	"net/url"
	"strings"

	"github.com/target/storefront-ui/internal/domain/model"
)

const (
	// SortDirAsc represents ascending sort direction.
	SortDirAsc = "asc"
	// SortDirDesc represents descending sort direction.
	SortDirDesc = "desc"
)

// ParseSortParam extracts sort field and direction from URL query parameters.
// It supports two formats:
// 1. Combined format: ?sort=field:dir (e.g., ?sort=price:desc)
// 2. Separate format: ?sort=field&dir=direction (e.g., ?sort=price&dir=desc)
//
// The direction is lowercased and must be "asc" or "desc"; anything else yields "".
func ParseSortParam(q url.Values, sortKey, dirKey string) (string, string) {
	sortParam := strings.TrimSpace(q.Get(sortKey))
	dirParam := strings.ToLower(strings.TrimSpace(q.Get(dirKey)))

	if field, dir, ok := strings.Cut(sortParam, ":"); ok {
		field = strings.TrimSpace(field)
		dir = strings.ToLower(strings.TrimSpace(dir))
		if dir == SortDirAsc || dir == SortDirDesc {
			return field, dir
		}
		return field, ""
	}

	if dirParam == SortDirAsc || dirParam == SortDirDesc {
		return sortParam, dirParam
	}
	return sortParam, ""
}

// SortOption is one entry of a list's sort dropdown; Value uses the field:dir form.
type SortOption struct {
	Value string
	Label string
}

//nolint:gochecknoglobals // static read-only sort choices
var productSortOptions = []SortOption{
	{Value: "name:asc", Label: "Name"},
	{Value: "price:asc", Label: "Price: low to high"},
	{Value: "price:desc", Label: "Price: high to low"},
	{Value: "created_at:desc", Label: "Newest"},
}

// parseProductFilter reads the q, category and sort parameters of the product lists.
func parseProductFilter(q url.Values) model.ProductListOptions {
	field, dir := ParseSortParam(q, "sort", "dir")
	opts := model.ProductListOptions{
		Query:      q.Get("q"),
		CategoryID: q.Get("category"),
		Sort:       field,
		Dir:        dir,
	}
	opts.Normalize()
	return opts
}

// sortValue renders the filter's sort back into the field:dir form used by the dropdown.
func sortValue(opts model.ProductListOptions) string {
	if opts.Sort == "" {
		return ""
	}
	dir := opts.Dir
	if dir == "" {
		dir = SortDirAsc
	}
	return opts.Sort + ":" + dir
}

func parseOrderStatusFilter(q url.Values) model.OrderStatus {
	s, _ := model.ParseOrderStatus(q.Get("status"))
	return s
}

func parseSearchFilter(q url.Values) string {
	return strings.TrimSpace(q.Get("q"))
}
