package testutil

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/target/storefront-ui/internal/domain/model"
)

// ProductBuilder provides a fluent interface for building Product fixtures.
type ProductBuilder struct {
	p model.Product
}

// NewProduct creates a ProductBuilder with sensible defaults.
func NewProduct(id string) *ProductBuilder {
	return &ProductBuilder{p: model.Product{
		ID:        id,
		Name:      "Product " + id,
		Price:     decimal.RequireFromString("9.99"),
		Stock:     10,
		Active:    true,
		CreatedAt: TestTime(),
		UpdatedAt: TestTime(),
	}}
}

// WithName sets the product name.
func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.p.Name = name
	return b
}

// WithPrice sets the price from a decimal string.
func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.p.Price = decimal.RequireFromString(price)
	return b
}

// WithCategory sets the category id and name.
func (b *ProductBuilder) WithCategory(id, name string) *ProductBuilder {
	b.p.CategoryID = id
	b.p.CategoryName = name
	return b
}

// WithStock sets the stock level.
func (b *ProductBuilder) WithStock(stock int) *ProductBuilder {
	b.p.Stock = stock
	return b
}

// Build returns a pointer to the built product.
func (b *ProductBuilder) Build() *model.Product {
	p := b.p
	return &p
}

// CartBuilder provides a fluent interface for building Cart fixtures.
type CartBuilder struct {
	c model.Cart
}

// NewCart creates an empty cart fixture.
func NewCart() *CartBuilder {
	return &CartBuilder{c: model.Cart{ID: "cart-1"}}
}

// WithLine appends a line for product at price times qty. Line ids are sequential.
func (b *CartBuilder) WithLine(productID, price string, qty int) *CartBuilder {
	b.c.Lines = append(b.c.Lines, model.CartLine{
		ID:          "line-" + strconv.Itoa(len(b.c.Lines)+1),
		ProductID:   productID,
		ProductName: "Product " + productID,
		UnitPrice:   decimal.RequireFromString(price),
		Quantity:    qty,
	})
	return b
}

// Build returns the cart with Total computed from its lines.
func (b *CartBuilder) Build() *model.Cart {
	c := b.c
	c.Lines = append([]model.CartLine(nil), b.c.Lines...)
	c.Total = model.LinesTotal(c.Lines)
	return &c
}

// NewOrder returns an order fixture with a single line.
func NewOrder(id string, status model.OrderStatus) *model.Order {
	line := model.OrderLine{
		ProductID:   "7",
		ProductName: "Product 7",
		UnitPrice:   decimal.RequireFromString("5.00"),
		Quantity:    2,
		Subtotal:    decimal.RequireFromString("10.00"),
	}
	return &model.Order{
		ID:            id,
		Number:        "SO-" + id,
		CustomerID:    "c1",
		CustomerName:  "Ann Shopper",
		CustomerEmail: "ann@example.com",
		Status:        status,
		Lines:         []model.OrderLine{line},
		Total:         line.Subtotal,
		PaymentMethod: model.PaymentCard,
		CreatedAt:     TestTime(),
		UpdatedAt:     TestTime().Add(time.Hour),
	}
}
