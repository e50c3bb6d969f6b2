package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name   string
		maxLen int
		value  string
		want   string
	}{
		{"valid input", 10, "valid", ""},
		{"empty string", 10, "", "Name is required."},
		{"whitespace only", 10, "   ", "Name is required."},
		{"exceeds max length", 5, "toolong", "Name cannot exceed 5 characters."},
		{"exactly max length", 5, "exact", ""},
		{"unicode within limit", 5, "héllo", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Required("Name", tt.maxLen)(tt.value))
		})
	}
}

func TestRequiredRange(t *testing.T) {
	v := RequiredRange("Password", 8, 12)
	assert.Equal(t, "Password is required.", v(""))
	assert.Equal(t, "Password must be between 8 and 12 characters.", v("short"))
	assert.Empty(t, v("longenough"))
}

func TestOptional(t *testing.T) {
	v := Optional("Notes", 3)
	assert.Empty(t, v(""))
	assert.Empty(t, v("abc"))
	assert.Equal(t, "Notes cannot exceed 3 characters.", v("abcd"))
}

func TestIntRange(t *testing.T) {
	v := IntRange("Quantity", 1, 99)
	assert.Empty(t, v(" 3 "))
	assert.Equal(t, "Quantity must be a whole number.", v("2.5"))
	assert.Equal(t, "Quantity must be between 1 and 99.", v("0"))
	assert.Equal(t, "Quantity must be between 1 and 99.", v("100"))
}

func TestDecimal(t *testing.T) {
	v := Decimal("Price", decimal.Zero, decimal.NewFromInt(1000), 2)
	tests := []struct {
		in   string
		want string
	}{
		{"19.99", ""},
		{"0", ""},
		{"", "Price is required."},
		{"abc", "Price must be a number."},
		{"-1", "Price must be between 0 and 1000."},
		{"1000.01", "Price must be between 0 and 1000."},
		{"1.234", "Price allows at most 2 decimal places."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, v(tt.in), "input %q", tt.in)
	}
}

func TestEmail(t *testing.T) {
	v := Email("Email")
	assert.Empty(t, v("ann@example.com"))
	assert.Equal(t, "Email is required.", v(" "))
	assert.Equal(t, "Enter a valid email address.", v("not-an-email"))
	assert.Equal(t, "Enter a valid email address.", v("Ann <ann@example.com>"))
}

func TestHTTPURL(t *testing.T) {
	v := HTTPURL("Image URL", 50)
	assert.Empty(t, v(""))
	assert.Empty(t, v("https://cdn.example.com/a.png"))
	assert.Equal(t, "Enter a valid http(s) URL.", v("ftp://example.com/a.png"))
	assert.Equal(t, "Enter a valid http(s) URL.", v("https://"))
}

func TestOneOf(t *testing.T) {
	v := OneOf("Status", []string{"pending", "paid"})
	assert.Empty(t, v("PAID"))
	assert.Equal(t, "Status must be one of: pending, paid", v("lost"))
}

func TestFieldValidator_StopsAtFirstErrorPerField(t *testing.T) {
	fv := New().
		Validate("name", "", Required("Name", 10), Optional("Name", 1)).
		Validate("email", "ann@example.com", Email("Email")).
		Validate("confirm", "b", Equals("Password confirmation", "a"))

	assert.False(t, fv.Valid())
	assert.Equal(t, map[string]string{
		"name":    "Name is required.",
		"confirm": "Password confirmation does not match.",
	}, fv.Errors())
}
