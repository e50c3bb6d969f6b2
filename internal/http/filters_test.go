package httpx

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/target/storefront-ui/internal/domain/model"
)

func TestParseSortParam(t *testing.T) {
	tests := []struct {
		name      string
		query     url.Values
		wantField string
		wantDir   string
	}{
		{name: "combined asc", query: url.Values{"sort": {"price:asc"}}, wantField: "price", wantDir: "asc"},
		{name: "combined uppercase", query: url.Values{"sort": {"name:DESC"}}, wantField: "name", wantDir: "desc"},
		{name: "combined invalid direction", query: url.Values{"sort": {"price:sideways"}}, wantField: "price"},
		{name: "empty direction", query: url.Values{"sort": {"price:"}}, wantField: "price"},
		{name: "separate params", query: url.Values{"sort": {"created_at"}, "dir": {"Desc"}}, wantField: "created_at", wantDir: "desc"},
		{name: "separate invalid direction", query: url.Values{"sort": {"name"}, "dir": {"up"}}, wantField: "name"},
		{name: "combined wins over dir", query: url.Values{"sort": {"price:asc"}, "dir": {"desc"}}, wantField: "price", wantDir: "asc"},
		{name: "nothing", query: url.Values{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, dir := ParseSortParam(tt.query, "sort", "dir")
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestParseProductFilter(t *testing.T) {
	t.Run("normalizes values", func(t *testing.T) {
		f := parseProductFilter(url.Values{
			"q":        {"  desk "},
			"category": {" c1 "},
			"sort":     {"PRICE:desc"},
		})
		assert.Equal(t, model.ProductListOptions{Query: "desk", CategoryID: "c1", Sort: "price", Dir: "desc"}, f)
	})

	t.Run("unsupported sort dropped with its direction", func(t *testing.T) {
		f := parseProductFilter(url.Values{"sort": {"stock:desc"}})
		assert.Empty(t, f.Sort)
		assert.Empty(t, f.Dir)
	})
}

func TestSortValue(t *testing.T) {
	assert.Equal(t, "", sortValue(model.ProductListOptions{}))
	assert.Equal(t, "price:desc", sortValue(model.ProductListOptions{Sort: "price", Dir: "desc"}))
	assert.Equal(t, "name:asc", sortValue(model.ProductListOptions{Sort: "name"}))

	values := make([]string, 0, len(productSortOptions))
	for _, o := range productSortOptions {
		values = append(values, o.Value)
	}
	assert.Contains(t, values, sortValue(parseProductFilter(url.Values{"sort": {"price:desc"}})),
		"a parsed sort round-trips to a dropdown option")
}

func TestParseOrderStatusFilter(t *testing.T) {
	assert.Equal(t, model.OrderStatusShipped, parseOrderStatusFilter(url.Values{"status": {"shipped"}}))
	assert.Equal(t, model.OrderStatus(""), parseOrderStatusFilter(url.Values{"status": {"lost"}}))
	assert.Equal(t, model.OrderStatus(""), parseOrderStatusFilter(url.Values{}))
}

func TestParseSearchFilter(t *testing.T) {
	assert.Equal(t, "ann", parseSearchFilter(url.Values{"q": {"  ann  "}}))
	assert.Empty(t, parseSearchFilter(url.Values{}))
}
