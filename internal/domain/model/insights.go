package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductSales is one row of the top products report.
type ProductSales struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DailySales is revenue and order count for one day.
type DailySales struct {
	Day     time.Time       `json:"day"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// AnalyticsSummary is the back-office sales report.
type AnalyticsSummary struct {
	Revenue           decimal.Decimal `json:"revenue"`
	OrdersCount       int             `json:"orders_count"`
	CustomersCount    int             `json:"customers_count"`
	ProductsCount     int             `json:"products_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TopProducts       []ProductSales  `json:"top_products"`
	SalesByDay        []DailySales    `json:"sales_by_day"`
}

// PeakDay returns the highest-revenue day, if any.
func (a *AnalyticsSummary) PeakDay() (DailySales, bool) {
	if a == nil || len(a.SalesByDay) == 0 {
		return DailySales{}, false
	}
	best := a.SalesByDay[0]
	for _, d := range a.SalesByDay[1:] {
		if d.Revenue.GreaterThan(best.Revenue) {
			best = d
		}
	}
	return best, true
}

// AnalyticsRange selects the reporting window.
type AnalyticsRange string

const (
	Range7Days  AnalyticsRange = "7d"
	Range30Days AnalyticsRange = "30d"
	Range90Days AnalyticsRange = "90d"
)

// ParseAnalyticsRange falls back to 30 days for unknown input.
func ParseAnalyticsRange(v string) AnalyticsRange {
	switch r := AnalyticsRange(strings.TrimSpace(v)); r {
	case Range7Days, Range30Days, Range90Days:
		return r
	default:
		return Range30Days
	}
}

// Settings are the store-wide options editable in the back office.
type Settings struct {
	StoreName        string          `json:"store_name"         validate:"required,max=120"`
	ContactEmail     string          `json:"contact_email"      validate:"required,email"`
	Currency         string          `json:"currency"           validate:"required,len=3"`
	TaxRate          decimal.Decimal `json:"tax_rate"           validate:"gte=0,lte=1"`
	ShippingFlatRate decimal.Decimal `json:"shipping_flat_rate" validate:"gte=0"`
	MaintenanceMode  bool            `json:"maintenance_mode"`
}

// Normalize trims fields and upper-cases the currency.
func (s *Settings) Normalize() {
	s.StoreName = strings.TrimSpace(s.StoreName)
	s.ContactEmail = strings.TrimSpace(s.ContactEmail)
	s.Currency = strings.ToUpper(strings.TrimSpace(s.Currency))
}

// Dashboard aggregates the admin landing view.
type Dashboard struct {
	Summary         *AnalyticsSummary
	RecentOrders    []*Order
	RecentCustomers []*Customer
	LowStock        []*Product
}
