package service

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/target/storefront-ui/internal/core"
	"github.com/target/storefront-ui/internal/domain/model"
)

const (
	dashboardRecentLimit = 5
	lowStockThreshold    = 5
	lowStockScan         = 100
)

// InsightsServiceOptions groups dependencies for InsightsService.
type InsightsServiceOptions struct {
	Insights  core.InsightsRepository // Required
	Orders    core.OrderRepository    // Required: recent orders on the dashboard
	Customers core.CustomerRepository // Required: newest customers on the dashboard
	Products  core.ProductRepository  // Required: low stock on the dashboard
}

// InsightsService serves the back-office dashboard, analytics and store settings.
type InsightsService struct {
	insights  core.InsightsRepository
	orders    core.OrderRepository
	customers core.CustomerRepository
	products  core.ProductRepository
}

// NewInsightsService constructs a new InsightsService.
func NewInsightsService(opts InsightsServiceOptions) *InsightsService {
	if opts.Insights == nil {
		panic("InsightsRepository is required")
	}
	if opts.Orders == nil {
		panic("OrderRepository is required")
	}
	if opts.Customers == nil {
		panic("CustomerRepository is required")
	}
	if opts.Products == nil {
		panic("ProductRepository is required")
	}
	return &InsightsService{
		insights:  opts.Insights,
		orders:    opts.Orders,
		customers: opts.Customers,
		products:  opts.Products,
	}
}

// Dashboard fetches the landing view's panels concurrently. Any failure fails the dashboard.
func (s *InsightsService) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var d model.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.insights.Analytics(gctx, model.Range30Days)
		if err != nil {
			return fmt.Errorf("dashboard analytics: %w", err)
		}
		d.Summary = summary
		return nil
	})
	g.Go(func() error {
		orders, err := s.orders.List(gctx, model.OrderListOptions{Limit: dashboardRecentLimit})
		if err != nil {
			return fmt.Errorf("dashboard orders: %w", err)
		}
		d.RecentOrders = orders
		return nil
	})
	g.Go(func() error {
		customers, err := s.customers.List(gctx, model.CustomerListOptions{Limit: dashboardRecentLimit})
		if err != nil {
			return fmt.Errorf("dashboard customers: %w", err)
		}
		d.RecentCustomers = customers
		return nil
	})
	g.Go(func() error {
		products, err := s.products.List(gctx, model.ProductListOptions{Limit: lowStockScan})
		if err != nil {
			return fmt.Errorf("dashboard stock: %w", err)
		}
		d.LowStock = lowStock(products, lowStockThreshold)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}

// lowStock returns products at or below threshold, lowest stock first.
func lowStock(products []*model.Product, threshold int) []*model.Product {
	out := make([]*model.Product, 0)
	for _, p := range products {
		if p != nil && p.Stock <= threshold {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out
}

// Analytics returns the sales report for r.
func (s *InsightsService) Analytics(ctx context.Context, r model.AnalyticsRange) (*model.AnalyticsSummary, error) {
	summary, err := s.insights.Analytics(ctx, model.ParseAnalyticsRange(string(r)))
	if err != nil {
		return nil, fmt.Errorf("get analytics: %w", err)
	}
	return summary, nil
}

// Settings returns the store settings.
func (s *InsightsService) Settings(ctx context.Context) (*model.Settings, error) {
	st, err := s.insights.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return st, nil
}

// UpdateSettings validates and saves the store settings.
func (s *InsightsService) UpdateSettings(ctx context.Context, in model.Settings) (*model.Settings, error) {
	in.Normalize()
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	st, err := s.insights.UpdateSettings(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return st, nil
}
