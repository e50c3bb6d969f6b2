// Package core defines the ports between the storefront services and the remote store API.
package core

import (
	"context"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// The store API is the only system of record; every implementation is a remote client.
// Calls authenticate with the session carried in ctx (see domainauth.WithSession).

// AuthAPI exchanges user credentials for credential tokens.
type AuthAPI interface {
	Login(ctx context.Context, req model.LoginRequest) (domainauth.Credential, error)
	Register(ctx context.Context, req model.RegisterRequest) (domainauth.Credential, error)
	// Logout revokes the credential carried in ctx.
	Logout(ctx context.Context) error
}

// ProductRepository defines catalog product operations.
type ProductRepository interface {
	List(ctx context.Context, opts model.ProductListOptions) ([]*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, req model.ProductRequest) (*model.Product, error)
	Update(ctx context.Context, id string, req model.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines catalog category operations.
type CategoryRepository interface {
	List(ctx context.Context) ([]*model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, req model.CategoryRequest) (*model.Category, error)
	Update(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

// OrderRepository defines back-office order operations.
type OrderRepository interface {
	List(ctx context.Context, opts model.OrderListOptions) ([]*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id string, req model.UpdateOrderStatusRequest) (*model.Order, error)
}

// CustomerRepository defines back-office customer operations.
type CustomerRepository interface {
	List(ctx context.Context, opts model.CustomerListOptions) ([]*model.Customer, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
}

// CartRepository defines the signed-in shopper's cart operations.
type CartRepository interface {
	Get(ctx context.Context) (*model.Cart, error)
	AddItem(ctx context.Context, req model.CartItemRequest) (*model.Cart, error)
	UpdateItem(ctx context.Context, lineID string, quantity int) (*model.Cart, error)
	RemoveItem(ctx context.Context, lineID string) (*model.Cart, error)
	// Checkout places an order for the requested cart lines.
	Checkout(ctx context.Context, req model.CheckoutRequest) (*model.Order, error)
}

// AccountRepository defines the signed-in shopper's own account operations.
type AccountRepository interface {
	Profile(ctx context.Context) (*model.Profile, error)
	UpdateProfile(ctx context.Context, req model.ProfileRequest) (*model.Profile, error)
	Orders(ctx context.Context, opts model.OrderListOptions) ([]*model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
}

// InsightsRepository defines back-office reporting and settings operations.
type InsightsRepository interface {
	Analytics(ctx context.Context, r model.AnalyticsRange) (*model.AnalyticsSummary, error)
	Settings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, s model.Settings) (*model.Settings, error)
}
