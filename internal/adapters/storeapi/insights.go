package storeapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/target/storefront-ui/internal/core"
	"github.com/target/storefront-ui/internal/domain/model"
)

// InsightsAPI implements core.InsightsRepository.
type InsightsAPI struct{ c *Client }

// NewInsightsAPI returns the analytics and settings endpoints of c.
func NewInsightsAPI(c *Client) *InsightsAPI { return &InsightsAPI{c: c} }

var _ core.InsightsRepository = (*InsightsAPI)(nil)

func (a *InsightsAPI) Analytics(ctx context.Context, r model.AnalyticsRange) (*model.AnalyticsSummary, error) {
	q := url.Values{"range": []string{string(r)}}
	var out model.AnalyticsSummary
	if err := a.c.do(ctx, call{op: "analytics.summary", method: http.MethodGet, path: "/analytics", query: q}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *InsightsAPI) Settings(ctx context.Context) (*model.Settings, error) {
	var out model.Settings
	if err := a.c.do(ctx, call{op: "settings.get", method: http.MethodGet, path: "/settings"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *InsightsAPI) UpdateSettings(ctx context.Context, s model.Settings) (*model.Settings, error) {
	var out model.Settings
	if err := a.c.do(ctx, call{op: "settings.update", method: http.MethodPut, path: "/settings", body: s}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
