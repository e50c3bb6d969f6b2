package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/target/storefront-ui/internal/domain/model"
	"github.com/target/storefront-ui/internal/http/validation"
)

const (
	maxNameLen        = 120
	maxProductNameLen = 255
	maxDescriptionLen = 5000
	maxURLLen         = 2048
	maxQuantity       = 99
	maxStock          = 1_000_000
)

//nolint:gochecknoglobals // static read-only bounds
var (
	maxPrice   = decimal.NewFromInt(1_000_000)
	maxTaxRate = decimal.NewFromInt(1)
)

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

func formBool(r *http.Request, key string) bool {
	switch strings.ToLower(formValue(r, key)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// formIDs returns the non-empty values of a repeated field, deduplicated in order.
func formIDs(r *http.Request, key string) []string {
	if err := r.ParseForm(); err != nil {
		return nil
	}
	seen := map[string]struct{}{}
	var out []string
	for _, v := range r.PostForm[key] {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func parseLoginForm(r *http.Request) (model.LoginRequest, map[string]string) {
	req := model.LoginRequest{
		Email:    formValue(r, "email"),
		Password: r.PostFormValue("password"),
	}
	req.Normalize()
	errs := validation.New().
		Validate("email", req.Email, validation.Email("Email")).
		Validate("password", req.Password, validation.RequiredRange("Password", 6, 128)).
		Errors()
	return req, errs
}

func parseRegisterForm(r *http.Request) (model.RegisterRequest, map[string]string) {
	req := model.RegisterRequest{
		Name:            formValue(r, "name"),
		Email:           formValue(r, "email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
	req.Normalize()
	errs := validation.New().
		Validate("name", req.Name, validation.Required("Name", maxNameLen)).
		Validate("email", req.Email, validation.Email("Email")).
		Validate("password", req.Password, validation.RequiredRange("Password", 8, 128)).
		Validate("confirm_password", req.ConfirmPassword, validation.Equals("Password confirmation", req.Password)).
		Errors()
	return req, errs
}

func parseProductForm(r *http.Request) (model.ProductRequest, map[string]string) {
	priceRaw := formValue(r, "price")
	stockRaw := formValue(r, "stock")
	if stockRaw == "" {
		stockRaw = "0"
	}
	req := model.ProductRequest{
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
		CategoryID:  formValue(r, "category_id"),
		ImageURL:    formValue(r, "image_url"),
		Active:      formBool(r, "active"),
	}

	fv := validation.New().
		Validate("name", req.Name, validation.Required("Name", maxProductNameLen)).
		Validate("description", req.Description, validation.Optional("Description", maxDescriptionLen)).
		Validate("price", priceRaw, validation.Decimal("Price", decimal.Zero, maxPrice, 2)).
		Validate("category_id", req.CategoryID, validation.Required("Category", maxNameLen)).
		Validate("image_url", req.ImageURL, validation.HTTPURL("Image URL", maxURLLen)).
		Validate("stock", stockRaw, validation.IntRange("Stock", 0, maxStock))

	if d, err := decimal.NewFromString(priceRaw); err == nil {
		req.Price = d
	}
	if n, err := strconv.Atoi(stockRaw); err == nil {
		req.Stock = n
	}
	req.Normalize()
	return req, fv.Errors()
}

func parseCategoryForm(r *http.Request) (model.CategoryRequest, map[string]string) {
	req := model.CategoryRequest{
		Name:        formValue(r, "name"),
		Description: formValue(r, "description"),
		ImageURL:    formValue(r, "image_url"),
	}
	req.Normalize()
	errs := validation.New().
		Validate("name", req.Name, validation.Required("Name", maxNameLen)).
		Validate("description", req.Description, validation.Optional("Description", 2000)).
		Validate("image_url", req.ImageURL, validation.HTTPURL("Image URL", maxURLLen)).
		Errors()
	return req, errs
}

// parseAddress reads the address inputs; errors are keyed under prefix to match API field names.
func parseAddress(r *http.Request, fv *validation.FieldValidator, prefix string, required bool) model.Address {
	a := model.Address{
		Line1:      formValue(r, "line1"),
		Line2:      formValue(r, "line2"),
		City:       formValue(r, "city"),
		PostalCode: formValue(r, "postal_code"),
		Country:    formValue(r, "country"),
	}
	a.Normalize()
	if !required && a.IsZero() {
		return a
	}
	fv.Validate(prefix+".line1", a.Line1, validation.Required("Address", 200)).
		Validate(prefix+".line2", a.Line2, validation.Optional("Address line 2", 200)).
		Validate(prefix+".city", a.City, validation.Required("City", 100)).
		Validate(prefix+".postal_code", a.PostalCode, validation.Required("Postal code", 20)).
		Validate(prefix+".country", a.Country, validation.RequiredRange("Country", 2, 2))
	return a
}

func parseCheckoutForm(r *http.Request) (model.CheckoutRequest, map[string]string) {
	fv := validation.New()
	req := model.CheckoutRequest{
		LineIDs:       formIDs(r, "line_ids"),
		PaymentMethod: model.PaymentMethod(strings.ToLower(formValue(r, "payment_method"))),
		Notes:         formValue(r, "notes"),
	}
	req.ShippingAddress = parseAddress(r, fv, "shipping_address", true)
	fv.Validate("payment_method", string(req.PaymentMethod), validation.OneOf("Payment method", []string{
		string(model.PaymentCard), string(model.PaymentCashOnDelivery), string(model.PaymentBankTransfer),
	})).
		Validate("notes", req.Notes, validation.Optional("Notes", 1000))
	if len(req.LineIDs) == 0 {
		fv.Errors()["line_ids"] = "Select at least one item to check out."
	}
	return req, fv.Errors()
}

func parseProfileForm(r *http.Request) (model.ProfileRequest, map[string]string) {
	fv := validation.New()
	req := model.ProfileRequest{
		Name:  formValue(r, "name"),
		Phone: formValue(r, "phone"),
	}
	req.Address = parseAddress(r, fv, "address", false)
	req.Normalize()
	fv.Validate("name", req.Name, validation.Required("Name", maxNameLen)).
		Validate("phone", req.Phone, validation.Optional("Phone", 20))
	return req, fv.Errors()
}

func parseSettingsForm(r *http.Request) (model.Settings, map[string]string) {
	taxRaw := formValue(r, "tax_rate")
	shipRaw := formValue(r, "shipping_flat_rate")
	s := model.Settings{
		StoreName:       formValue(r, "store_name"),
		ContactEmail:    formValue(r, "contact_email"),
		Currency:        formValue(r, "currency"),
		MaintenanceMode: formBool(r, "maintenance_mode"),
	}
	s.Normalize()
	fv := validation.New().
		Validate("store_name", s.StoreName, validation.Required("Store name", maxNameLen)).
		Validate("contact_email", s.ContactEmail, validation.Email("Contact email")).
		Validate("currency", s.Currency, validation.RequiredRange("Currency", 3, 3)).
		Validate("tax_rate", taxRaw, validation.Decimal("Tax rate", decimal.Zero, maxTaxRate, 4)).
		Validate("shipping_flat_rate", shipRaw, validation.Decimal("Shipping rate", decimal.Zero, maxPrice, 2))
	if d, err := decimal.NewFromString(taxRaw); err == nil {
		s.TaxRate = d
	}
	if d, err := decimal.NewFromString(shipRaw); err == nil {
		s.ShippingFlatRate = d
	}
	return s, fv.Errors()
}

func parseCartItemForm(r *http.Request) (model.CartItemRequest, map[string]string) {
	qtyRaw := formValue(r, "quantity")
	if qtyRaw == "" {
		qtyRaw = "1"
	}
	req := model.CartItemRequest{ProductID: formValue(r, "product_id")}
	fv := validation.New().
		Validate("quantity", qtyRaw, validation.IntRange("Quantity", 1, maxQuantity))
	if n, err := strconv.Atoi(qtyRaw); err == nil {
		req.Quantity = n
	}
	return req, fv.Errors()
}

func parseQuantity(r *http.Request) (int, string) {
	raw := formValue(r, "quantity")
	if msg := validation.IntRange("Quantity", 1, maxQuantity)(raw); msg != "" {
		return 0, msg
	}
	n, _ := strconv.Atoi(raw)
	return n, ""
}
