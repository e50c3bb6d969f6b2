package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/storefront-ui/internal/core"
	"github.com/target/storefront-ui/internal/domain/model"
	apperrors "github.com/target/storefront-ui/internal/errors"
)

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Orders core.OrderRepository // Required
	Logger *slog.Logger         // Optional: structured logger
}

// OrderService manages orders in the back office.
type OrderService struct {
	orders core.OrderRepository
	logger *slog.Logger
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	if opts.Orders == nil {
		panic("OrderRepository is required")
	}
	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "order_service")
	}
	return &OrderService{orders: opts.Orders, logger: logger}
}

// List returns a page of orders. An unknown status filter is ignored.
func (s *OrderService) List(ctx context.Context, opts model.OrderListOptions) ([]*model.Order, error) {
	opts.Limit = clampLimit(opts.Limit)
	opts.Offset = clampOffset(opts.Offset)
	if opts.Status != "" && !opts.Status.Valid() {
		opts.Status = ""
	}
	orders, err := s.orders.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Get retrieves an order by its ID.
func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	id, err := requireID("order", id)
	if err != nil {
		return nil, err
	}
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// UpdateStatus asks the store to move an order to status. Whether the transition is allowed is the store's call.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	id, err := requireID("order", id)
	if err != nil {
		return nil, err
	}
	st, ok := model.ParseOrderStatus(status)
	if !ok {
		return nil, apperrors.ValidationField("status", "Unknown order status")
	}
	o, err := s.orders.UpdateStatus(ctx, id, model.UpdateOrderStatusRequest{Status: st})
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "order status updated", "order_id", id, "status", st)
	}
	return o, nil
}

// CustomerServiceOptions groups dependencies for CustomerService.
type CustomerServiceOptions struct {
	Customers core.CustomerRepository // Required
	Orders    core.OrderRepository    // Required: a customer's order history
}

// CustomerService reads shopper accounts for the back office.
type CustomerService struct {
	customers core.CustomerRepository
	orders    core.OrderRepository
}

// NewCustomerService constructs a new CustomerService.
func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	if opts.Customers == nil {
		panic("CustomerRepository is required")
	}
	if opts.Orders == nil {
		panic("OrderRepository is required")
	}
	return &CustomerService{customers: opts.Customers, orders: opts.Orders}
}

// List returns a page of customers.
func (s *CustomerService) List(ctx context.Context, opts model.CustomerListOptions) ([]*model.Customer, error) {
	opts.Limit = clampLimit(opts.Limit)
	opts.Offset = clampOffset(opts.Offset)
	customers, err := s.customers.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// CustomerDetail is a customer with recent orders.
type CustomerDetail struct {
	Customer *model.Customer
	Orders   []*model.Order
}

// Get retrieves a customer and their most recent orders.
func (s *CustomerService) Get(ctx context.Context, id string) (*CustomerDetail, error) {
	id, err := requireID("customer", id)
	if err != nil {
		return nil, err
	}
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	orders, err := s.orders.List(ctx, model.OrderListOptions{CustomerID: id, Limit: 10})
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	return &CustomerDetail{Customer: c, Orders: orders}, nil
}
