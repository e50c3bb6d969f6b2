// Package storefront holds typed view models for the shopper cart and checkout pages.
package storefront

import (
	"github.com/shopspring/decimal"

	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/http/ui/viewmodel"
)

// CartRow is one cart line with its checkout selection state.
type CartRow struct {
	model.CartLine
	Selected bool
}

// CartPage is the typed view model passed to the cart template.
type CartPage struct {
	viewmodel.Layout

	CartID string
	Rows   []CartRow
	Total  decimal.Decimal

	Error        bool
	ErrorMessage string
}

// LayoutData returns a pointer to the embedded layout for renderer helpers.
func (p *CartPage) LayoutData() *viewmodel.Layout { return &p.Layout }

// NewCartPage marks the rows whose ids are in selected.
// With no prior selection every line starts selected.
func NewCartPage(layout viewmodel.Layout, cart *model.Cart, selected []model.CartLine, hasSelection bool) *CartPage {
	p := &CartPage{Layout: layout}
	if cart == nil {
		return p
	}
	p.CartID = cart.ID
	p.Total = cart.Total

	picked := make(map[string]struct{}, len(selected))
	for _, l := range selected {
		picked[l.ID] = struct{}{}
	}
	p.Rows = make([]CartRow, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		_, ok := picked[l.ID]
		p.Rows = append(p.Rows, CartRow{CartLine: l, Selected: ok || !hasSelection})
	}
	return p
}

// Empty reports whether the cart has no lines.
func (p *CartPage) Empty() bool { return len(p.Rows) == 0 }

// SelectedCount is the number of selected lines.
func (p *CartPage) SelectedCount() int {
	n := 0
	for _, r := range p.Rows {
		if r.Selected {
			n++
		}
	}
	return n
}

// SelectedTotal sums the displayed subtotals of the selected lines.
func (p *CartPage) SelectedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, r := range p.Rows {
		if r.Selected {
			total = total.Add(r.Subtotal())
		}
	}
	return total
}

// PaymentOption is a selectable payment method.
type PaymentOption struct {
	Value model.PaymentMethod
	Label string
}

// PaymentOptions lists the payment methods offered at checkout.
func PaymentOptions() []PaymentOption {
	return []PaymentOption{
		{Value: model.PaymentCard, Label: "Card"},
		{Value: model.PaymentCashOnDelivery, Label: "Cash on delivery"},
		{Value: model.PaymentBankTransfer, Label: "Bank transfer"},
	}
}

// CountryOption is one entry of the address country select.
type CountryOption struct {
	Code string
	Name string
}

// Countries lists the shipping countries offered on address forms.
func Countries() []CountryOption {
	return []CountryOption{
		{Code: "US", Name: "United States"},
		{Code: "CA", Name: "Canada"},
		{Code: "GB", Name: "United Kingdom"},
		{Code: "DE", Name: "Germany"},
		{Code: "FR", Name: "France"},
		{Code: "NL", Name: "Netherlands"},
		{Code: "AU", Name: "Australia"},
	}
}

// CheckoutPage is the typed view model passed to the checkout template.
type CheckoutPage struct {
	viewmodel.Layout

	Lines    []model.CartLine
	Total    decimal.Decimal
	Form     model.CheckoutRequest
	Payments  []PaymentOption
	Countries []CountryOption
	Errors    map[string]string

	Error        bool
	ErrorMessage string
}

// LayoutData returns a pointer to the embedded layout for renderer helpers.
func (p *CheckoutPage) LayoutData() *viewmodel.Layout { return &p.Layout }

// NewCheckoutPage builds the checkout view for lines, prefilled with form.
func NewCheckoutPage(layout viewmodel.Layout, lines []model.CartLine, form model.CheckoutRequest) *CheckoutPage {
	if form.PaymentMethod == "" {
		form.PaymentMethod = model.PaymentCard
	}
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	form.LineIDs = ids
	return &CheckoutPage{
		Layout:    layout,
		Lines:     lines,
		Total:     model.LinesTotal(lines),
		Form:      form,
		Payments:  PaymentOptions(),
		Countries: Countries(),
		Errors:    map[string]string{},
	}
}

// Empty reports whether nothing was selected for checkout.
func (p *CheckoutPage) Empty() bool { return len(p.Lines) == 0 }
