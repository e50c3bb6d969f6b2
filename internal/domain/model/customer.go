package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Address is a postal address used for shipping and profiles.
type Address struct {
	Line1      string `json:"line1"                validate:"required,max=200"`
	Line2      string `json:"line2,omitempty"      validate:"max=200"`
	City       string `json:"city"                 validate:"required,max=100"`
	PostalCode string `json:"postal_code"          validate:"required,max=20"`
	Country    string `json:"country"              validate:"required,len=2"`
}

// Normalize trims fields and upper-cases the country code.
func (a *Address) Normalize() {
	a.Line1 = strings.TrimSpace(a.Line1)
	a.Line2 = strings.TrimSpace(a.Line2)
	a.City = strings.TrimSpace(a.City)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.ToUpper(strings.TrimSpace(a.Country))
}

// IsZero reports whether no address field is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Customer is a shopper account as seen by the back office.
type Customer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	OrdersCount int             `json:"orders_count"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	Address     Address         `json:"address"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CustomerListOptions controls paging and search for customer lists.
type CustomerListOptions struct {
	Limit  int
	Offset int
	Query  string
}

// Profile is the signed-in shopper's own account data.
type Profile struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone,omitempty"`
	Address Address `json:"address"`
}

// ProfileRequest updates the signed-in shopper's profile.
type ProfileRequest struct {
	Name    string  `json:"name"            validate:"required,max=120"`
	Phone   string  `json:"phone,omitempty" validate:"omitempty,e164"`
	Address Address `json:"address"`
}

// Normalize trims fields in place.
func (r *ProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address.Normalize()
}
