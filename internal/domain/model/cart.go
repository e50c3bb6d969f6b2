package model

import (
	"github.com/shopspring/decimal"
)

// CartLine is one product line in a shopper's cart.
type CartLine struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"   validate:"required"`
	ProductName string          `json:"product_name"`
	ImageURL    string          `json:"image_url,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"     validate:"gte=1,lte=99"`
}

// Subtotal is unit price times quantity, as displayed. The API owns real pricing.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the shopper's server-side cart.
type Cart struct {
	ID    string          `json:"id"`
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// ItemCount sums quantities across lines.
func (c *Cart) ItemCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// LinesByID returns the lines whose IDs are in ids, preserving cart order.
func (c *Cart) LinesByID(ids []string) []CartLine {
	if c == nil || len(ids) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]CartLine, 0, len(ids))
	for _, l := range c.Lines {
		if _, ok := want[l.ID]; ok {
			out = append(out, l)
		}
	}
	return out
}

// CartSummary is the small badge shown in the shop header.
type CartSummary struct {
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

// LinesTotal sums the displayed subtotals of lines.
func LinesTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// CartItemRequest adds a product to the cart or changes a line quantity.
type CartItemRequest struct {
	ProductID string `json:"product_id,omitempty" validate:"required_without=LineID"`
	LineID    string `json:"-"`
	Quantity  int    `json:"quantity"             validate:"gte=1,lte=99"`
}

// PaymentMethod names how an order is paid.
type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentBankTransfer   PaymentMethod = "bank_transfer"
)

// CheckoutRequest places an order for the selected cart lines.
type CheckoutRequest struct {
	LineIDs         []string      `json:"line_ids"         validate:"required,min=1,dive,required"`
	ShippingAddress Address       `json:"shipping_address"`
	PaymentMethod   PaymentMethod `json:"payment_method"   validate:"required,oneof=card cod bank_transfer"`
	Notes           string        `json:"notes,omitempty"  validate:"max=1000"`
}
