package httpx

import (
	"github.com/target/storefront-ui/internal/domain/navigation"
)

// Pages outside the route table.
const (
	PageNotFound  = "not-found"
	PageForbidden = "forbidden"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// HeaderPageLoad carries the page-load scope on htmx requests.
const HeaderPageLoad = "X-Page-Load"

// FormMode represents the mode of a form (create or edit).
type FormMode string

const (
	FormModeEdit   FormMode = "edit"
	FormModeCreate FormMode = "create"
)

// Create and edit views share a form template; static pages share one layout.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	navigation.ViewHome:     "home-content",
	navigation.ViewLogin:    "login-content",
	navigation.ViewRegister: "register-content",

	navigation.ViewShopHome:       "shop-home-content",
	navigation.ViewShopProducts:   "shop-products-content",
	navigation.ViewShopProduct:    "shop-product-content",
	navigation.ViewShopCategories: "shop-categories-content",
	navigation.ViewShopCategory:   "shop-category-content",
	navigation.ViewShopCart:       "shop-cart-content",
	navigation.ViewShopCheckout:   "shop-checkout-content",
	navigation.ViewShopAccount:    "shop-account-content",
	navigation.ViewShopOrders:     "shop-orders-content",
	navigation.ViewShopOrder:      "shop-order-content",
	navigation.ViewShopProfile:    "shop-profile-content",
	navigation.ViewShopAbout:      "shop-info-content",
	navigation.ViewShopContact:    "shop-info-content",
	navigation.ViewShopFAQ:        "shop-info-content",

	navigation.ViewAdminDashboard:      "admin-dashboard-content",
	navigation.ViewAdminProducts:       "admin-products-content",
	navigation.ViewAdminProductCreate:  "admin-product-form-content",
	navigation.ViewAdminProduct:        "admin-product-form-content",
	navigation.ViewAdminCategories:     "admin-categories-content",
	navigation.ViewAdminCategoryCreate: "admin-category-form-content",
	navigation.ViewAdminCategory:       "admin-category-form-content",
	navigation.ViewAdminOrders:         "admin-orders-content",
	navigation.ViewAdminOrder:          "admin-order-content",
	navigation.ViewAdminCustomers:      "admin-customers-content",
	navigation.ViewAdminCustomer:       "admin-customer-content",
	navigation.ViewAdminAnalytics:      "admin-analytics-content",
	navigation.ViewAdminSettings:       "admin-settings-content",

	PageNotFound:  "not-found-content",
	PageForbidden: "forbidden-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Unknown pages render the not-found content.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "not-found-content"
}
