package navigation

// View names used by the storefront table. Handlers are registered per name.
const (
	ViewHome     = "home"
	ViewLogin    = "login"
	ViewRegister = "register"

	ViewShopHome       = "shop-home"
	ViewShopProducts   = "shop-products"
	ViewShopProduct    = "shop-product"
	ViewShopCategories = "shop-categories"
	ViewShopCategory   = "shop-category"
	ViewShopCart       = "shop-cart"
	ViewShopCheckout   = "shop-checkout"
	ViewShopAccount    = "shop-account"
	ViewShopOrders     = "shop-orders"
	ViewShopOrder      = "shop-order"
	ViewShopProfile    = "shop-profile"
	ViewShopAbout      = "shop-about"
	ViewShopContact    = "shop-contact"
	ViewShopFAQ        = "shop-faq"

	ViewAdminDashboard      = "admin-dashboard"
	ViewAdminProducts       = "admin-products"
	ViewAdminProductCreate  = "admin-product-create"
	ViewAdminProduct        = "admin-product"
	ViewAdminCategories     = "admin-categories"
	ViewAdminCategoryCreate = "admin-category-create"
	ViewAdminCategory       = "admin-category"
	ViewAdminOrders         = "admin-orders"
	ViewAdminOrder          = "admin-order"
	ViewAdminCustomers      = "admin-customers"
	ViewAdminCustomer       = "admin-customer"
	ViewAdminAnalytics      = "admin-analytics"
	ViewAdminSettings       = "admin-settings"
)

// ParamID is the parameter name used by every detail route.
const ParamID = "id"

// StorefrontRoutes lists every view of the storefront and back office.
// The order here is irrelevant; NewTable sorts by specificity.
func StorefrontRoutes() []Route {
	return []Route{
		{Name: ViewHome, Pattern: "/", Region: RegionPublic},
		{Name: ViewLogin, Pattern: "/login", Region: RegionPublic},
		{Name: ViewRegister, Pattern: "/register", Region: RegionPublic},

		{Name: ViewShopHome, Pattern: "/shop", Region: RegionShopper},
		{Name: ViewShopProduct, Pattern: "/shop/products/:id", Region: RegionShopper},
		{Name: ViewShopProducts, Pattern: "/shop/products", Region: RegionShopper},
		{Name: ViewShopCategory, Pattern: "/shop/categories/:id", Region: RegionShopper},
		{Name: ViewShopCategories, Pattern: "/shop/categories", Region: RegionShopper},
		{Name: ViewShopCart, Pattern: "/shop/cart", Region: RegionShopper},
		{Name: ViewShopCheckout, Pattern: "/shop/checkout", Region: RegionShopper},
		{Name: ViewShopAccount, Pattern: "/shop/account", Region: RegionShopper},
		{Name: ViewShopOrder, Pattern: "/shop/account/orders/:id", Region: RegionShopper},
		{Name: ViewShopOrders, Pattern: "/shop/account/orders", Region: RegionShopper},
		{Name: ViewShopProfile, Pattern: "/shop/account/profile", Region: RegionShopper},
		{Name: ViewShopAbout, Pattern: "/shop/about", Region: RegionShopper},
		{Name: ViewShopContact, Pattern: "/shop/contact", Region: RegionShopper},
		{Name: ViewShopFAQ, Pattern: "/shop/faq", Region: RegionShopper},

		{Name: ViewAdminDashboard, Pattern: "/admin", Region: RegionAdmin},
		{Name: ViewAdminProduct, Pattern: "/admin/products/:id", Region: RegionAdmin},
		{Name: ViewAdminProductCreate, Pattern: "/admin/products/create", Region: RegionAdmin},
		{Name: ViewAdminProducts, Pattern: "/admin/products", Region: RegionAdmin},
		{Name: ViewAdminCategory, Pattern: "/admin/categories/:id", Region: RegionAdmin},
		{Name: ViewAdminCategoryCreate, Pattern: "/admin/categories/create", Region: RegionAdmin},
		{Name: ViewAdminCategories, Pattern: "/admin/categories", Region: RegionAdmin},
		{Name: ViewAdminOrder, Pattern: "/admin/orders/:id", Region: RegionAdmin},
		{Name: ViewAdminOrders, Pattern: "/admin/orders", Region: RegionAdmin},
		{Name: ViewAdminCustomer, Pattern: "/admin/customers/:id", Region: RegionAdmin},
		{Name: ViewAdminCustomers, Pattern: "/admin/customers", Region: RegionAdmin},
		{Name: ViewAdminAnalytics, Pattern: "/admin/analytics", Region: RegionAdmin},
		{Name: ViewAdminSettings, Pattern: "/admin/settings", Region: RegionAdmin},
	}
}

// Storefront returns the table built from StorefrontRoutes.
func Storefront() *Table {
	return MustTable(StorefrontRoutes()...)
}
