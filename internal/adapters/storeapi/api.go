package storeapi

// API bundles every resource client sharing one Client.
type API struct {
	Auth       *AuthAPI
	Products   *ProductAPI
	Categories *CategoryAPI
	Orders     *OrderAPI
	Customers  *CustomerAPI
	Cart       *CartAPI
	Account    *AccountAPI
	Insights   *InsightsAPI
}

// New returns all resource clients over c.
func New(c *Client) *API {
	return &API{
		Auth:       NewAuthAPI(c),
		Products:   NewProductAPI(c),
		Categories: NewCategoryAPI(c),
		Orders:     NewOrderAPI(c),
		Customers:  NewCustomerAPI(c),
		Cart:       NewCartAPI(c),
		Account:    NewAccountAPI(c),
		Insights:   NewInsightsAPI(c),
	}
}
