package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/target/storefront-ui/internal/core"
	"github.com/target/storefront-ui/internal/domain/model"
	apperrors "github.com/target/storefront-ui/internal/errors"
)

// CartServiceOptions groups dependencies for CartService.
type CartServiceOptions struct {
	Cart   core.CartRepository // Required
	Logger *slog.Logger        // Optional: structured logger
}

// CartService reads and mutates the signed-in shopper's cart and places orders from it.
type CartService struct {
	cart   core.CartRepository
	logger *slog.Logger
}

// NewCartService constructs a new CartService.
func NewCartService(opts CartServiceOptions) *CartService {
	if opts.Cart == nil {
		panic("CartRepository is required")
	}
	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "cart_service")
	}
	return &CartService{cart: opts.Cart, logger: logger}
}

// Get returns the current cart.
func (s *CartService) Get(ctx context.Context) (*model.Cart, error) {
	c, err := s.cart.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return c, nil
}

// Summary returns the item count and total for the header badge.
func (s *CartService) Summary(ctx context.Context) (model.CartSummary, error) {
	c, err := s.Get(ctx)
	if err != nil {
		return model.CartSummary{}, err
	}
	total := c.Total
	if total.IsZero() && len(c.Lines) > 0 {
		total = model.LinesTotal(c.Lines)
	}
	return model.CartSummary{ItemCount: c.ItemCount(), Total: total}, nil
}

// Add puts a product in the cart.
func (s *CartService) Add(ctx context.Context, req model.CartItemRequest) (*model.Cart, error) {
	req.LineID = ""
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	c, err := s.cart.AddItem(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	return c, nil
}

// SetQuantity changes a line quantity. Zero or less removes the line.
func (s *CartService) SetQuantity(ctx context.Context, lineID string, quantity int) (*model.Cart, error) {
	lineID, err := requireID("cart line", lineID)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return s.Remove(ctx, lineID)
	}
	if vErr := validateStruct(model.CartItemRequest{LineID: lineID, Quantity: quantity}); vErr != nil {
		return nil, vErr
	}
	c, err := s.cart.UpdateItem(ctx, lineID, quantity)
	if err != nil {
		return nil, fmt.Errorf("update cart line: %w", err)
	}
	return c, nil
}

// Remove deletes a line from the cart.
func (s *CartService) Remove(ctx context.Context, lineID string) (*model.Cart, error) {
	lineID, err := requireID("cart line", lineID)
	if err != nil {
		return nil, err
	}
	c, err := s.cart.RemoveItem(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("remove cart line: %w", err)
	}
	return c, nil
}

// ResolveLines returns the current cart lines matching ids, preserving cart order.
// Lines that left the cart since they were selected are dropped.
func (s *CartService) ResolveLines(ctx context.Context, ids []string) ([]model.CartLine, error) {
	c, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return c.LinesByID(ids), nil
}

// Checkout places an order for the selected lines.
// Every requested line must still be in the cart; prices are the store's business.
func (s *CartService) Checkout(ctx context.Context, req model.CheckoutRequest) (*model.Order, error) {
	req.ShippingAddress.Normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	c, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if got := c.LinesByID(req.LineIDs); len(got) != len(uniqueStrings(req.LineIDs)) {
		return nil, apperrors.ValidationField("line_ids", "Some selected items are no longer in your cart.")
	}

	order, err := s.cart.Checkout(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if s.logger != nil && order != nil {
		s.logger.InfoContext(ctx, "order placed", "order_id", order.ID, "lines", len(req.LineIDs))
	}
	return order, nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
