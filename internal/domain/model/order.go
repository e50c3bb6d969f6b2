package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state reported by the API. Transitions are the API's business.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists statuses in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusPaid,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// Valid reports whether the status is supported.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseOrderStatus normalizes a status string and reports whether it is supported.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// BadgeClass maps a status to a CSS badge modifier.
func (s OrderStatus) BadgeClass() string {
	switch s {
	case OrderStatusPaid:
		return "badge-info"
	case OrderStatusShipped:
		return "badge-warning"
	case OrderStatusDelivered:
		return "badge-success"
	case OrderStatusCancelled:
		return "badge-danger"
	default:
		return "badge-secondary"
	}
}

// OrderLine is a purchased product line frozen at order time.
type OrderLine struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Order is a placed order.
type Order struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	Status          OrderStatus     `json:"status"`
	Lines           []OrderLine     `json:"lines"`
	Total           decimal.Decimal `json:"total"`
	PaymentMethod   PaymentMethod   `json:"payment_method,omitempty"`
	ShippingAddress Address         `json:"shipping_address"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderListOptions controls paging and filtering for order lists.
type OrderListOptions struct {
	Limit      int
	Offset     int
	Status     OrderStatus
	CustomerID string
}

// UpdateOrderStatusRequest changes an order's status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending paid shipped delivered cancelled"`
}
