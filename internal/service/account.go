package service

import (
	"context"
	"fmt"

	"github.com/target/storefront-ui/internal/core"
	"github.com/target/storefront-ui/internal/domain/model"
)

// AccountService serves the signed-in shopper's own profile and order history.
type AccountService struct {
	account core.AccountRepository
}

// NewAccountService constructs a new AccountService.
func NewAccountService(account core.AccountRepository) *AccountService {
	if account == nil {
		panic("AccountRepository is required")
	}
	return &AccountService{account: account}
}

// Profile returns the shopper's profile.
func (s *AccountService) Profile(ctx context.Context) (*model.Profile, error) {
	p, err := s.account.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// UpdateProfile validates and saves the shopper's profile.
func (s *AccountService) UpdateProfile(ctx context.Context, req model.ProfileRequest) (*model.Profile, error) {
	req.Normalize()
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	p, err := s.account.UpdateProfile(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

// Orders returns a page of the shopper's orders.
func (s *AccountService) Orders(ctx context.Context, opts model.OrderListOptions) ([]*model.Order, error) {
	opts.Limit = clampLimit(opts.Limit)
	opts.Offset = clampOffset(opts.Offset)
	orders, err := s.account.Orders(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list my orders: %w", err)
	}
	return orders, nil
}

// Order returns one of the shopper's orders.
func (s *AccountService) Order(ctx context.Context, id string) (*model.Order, error) {
	id, err := requireID("order", id)
	if err != nil {
		return nil, err
	}
	o, err := s.account.Order(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get my order: %w", err)
	}
	return o, nil
}
