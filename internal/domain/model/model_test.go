package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCart_Totals(t *testing.T) {
	cart := &Cart{Lines: []CartLine{
		{ID: "l1", ProductID: "p1", UnitPrice: decimal.RequireFromString("2.50"), Quantity: 3},
		{ID: "l2", ProductID: "p2", UnitPrice: decimal.RequireFromString("0.99"), Quantity: 1},
	}}

	assert.Equal(t, 4, cart.ItemCount())
	assert.True(t, decimal.RequireFromString("7.50").Equal(cart.Lines[0].Subtotal()))
	assert.True(t, decimal.RequireFromString("8.49").Equal(LinesTotal(cart.Lines)))
	assert.Equal(t, 0, (*Cart)(nil).ItemCount())
}

func TestCart_LinesByID(t *testing.T) {
	cart := &Cart{Lines: []CartLine{{ID: "a"}, {ID: "b"}, {ID: "c"}}}

	got := cart.LinesByID([]string{"c", "a", "zzz"})
	assert.Equal(t, []CartLine{{ID: "a"}, {ID: "c"}}, got)
	assert.Nil(t, cart.LinesByID(nil))
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus(" Shipped ")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusShipped, s)
	assert.Equal(t, "badge-warning", s.BadgeClass())

	_, ok = ParseOrderStatus("lost")
	assert.False(t, ok)
	assert.Len(t, OrderStatuses(), 5)
}

func TestProductListOptions_Normalize(t *testing.T) {
	o := ProductListOptions{Query: "  soup ", Sort: "PRICE"}
	o.Normalize()
	assert.Equal(t, "soup", o.Query)
	assert.Equal(t, "price", o.Sort)

	o = ProductListOptions{Sort: "stock; drop table"}
	o.Normalize()
	assert.Empty(t, o.Sort)
}

func TestAnalyticsSummary_PeakDay(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := &AnalyticsSummary{SalesByDay: []DailySales{
		{Day: day, Revenue: decimal.NewFromInt(10)},
		{Day: day.AddDate(0, 0, 1), Revenue: decimal.NewFromInt(30)},
		{Day: day.AddDate(0, 0, 2), Revenue: decimal.NewFromInt(20)},
	}}
	peak, ok := a.PeakDay()
	assert.True(t, ok)
	assert.Equal(t, day.AddDate(0, 0, 1), peak.Day)

	_, ok = (&AnalyticsSummary{}).PeakDay()
	assert.False(t, ok)
}

func TestParseAnalyticsRange(t *testing.T) {
	assert.Equal(t, Range7Days, ParseAnalyticsRange("7d"))
	assert.Equal(t, Range30Days, ParseAnalyticsRange("forever"))
}

func TestNormalizers(t *testing.T) {
	login := LoginRequest{Email: "  Ann@Example.COM "}
	login.Normalize()
	assert.Equal(t, "ann@example.com", login.Email)

	addr := Address{Line1: " 1 Main ", City: " Oslo", PostalCode: "0150 ", Country: " no "}
	addr.Normalize()
	assert.Equal(t, Address{Line1: "1 Main", City: "Oslo", PostalCode: "0150", Country: "NO"}, addr)
	assert.True(t, Address{}.IsZero())

	settings := Settings{Currency: " eur "}
	settings.Normalize()
	assert.Equal(t, "EUR", settings.Currency)
}
