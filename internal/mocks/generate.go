// Package mocks provides mock implementations for testing the storefront services and handlers.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the store API ports.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	products := mocks.NewMockProductRepository(ctrl)
//	products.EXPECT().GetByID(gomock.Any(), "7").Return(product, nil)
package mocks

// Generate mock for AuthAPI interface from internal/core package.
// Login, Register, Logout
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_api_mock.go github.com/target/storefront-ui/internal/core AuthAPI

// Generate mocks for the catalog ports.
// Create, GetByID, List, Update, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=product_repository_mock.go github.com/target/storefront-ui/internal/core ProductRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=category_repository_mock.go github.com/target/storefront-ui/internal/core CategoryRepository

// Generate mocks for the back-office order and customer ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=order_repository_mock.go github.com/target/storefront-ui/internal/core OrderRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=customer_repository_mock.go github.com/target/storefront-ui/internal/core CustomerRepository

// Generate mocks for the shopper ports.
// Get, AddItem, UpdateItem, RemoveItem, Checkout
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cart_repository_mock.go github.com/target/storefront-ui/internal/core CartRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=account_repository_mock.go github.com/target/storefront-ui/internal/core AccountRepository

// Generate mock for InsightsRepository interface from internal/core package.
// Analytics, Settings, UpdateSettings
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=insights_repository_mock.go github.com/target/storefront-ui/internal/core InsightsRepository
