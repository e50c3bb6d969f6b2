package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item as returned by the store API.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   string          `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	Stock        int             `json:"stock"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool { return p != nil && p.Stock > 0 }

// ProductListOptions controls paging and filtering for product lists.
type ProductListOptions struct {
	Limit      int
	Offset     int
	Query      string
	CategoryID string
	Sort       string // allowed: "name", "price", "created_at"
	Dir        string // "asc" or "desc"; empty leaves the API default
}

// Normalize trims filters and drops unsupported sort keys.
func (o *ProductListOptions) Normalize() {
	o.Query = strings.TrimSpace(o.Query)
	o.CategoryID = strings.TrimSpace(o.CategoryID)
	switch strings.ToLower(strings.TrimSpace(o.Sort)) {
	case "name", "price", "created_at":
		o.Sort = strings.ToLower(strings.TrimSpace(o.Sort))
	default:
		o.Sort = ""
	}
	o.Dir = strings.ToLower(strings.TrimSpace(o.Dir))
	if o.Sort == "" || (o.Dir != "asc" && o.Dir != "desc") {
		o.Dir = ""
	}
}

// ProductRequest is the payload for creating or updating a product.
type ProductRequest struct {
	Name        string          `json:"name"                  validate:"required,max=255"`
	Description string          `json:"description,omitempty" validate:"max=5000"`
	Price       decimal.Decimal `json:"price"                 validate:"gte=0"`
	CategoryID  string          `json:"category_id"           validate:"required"`
	ImageURL    string          `json:"image_url,omitempty"   validate:"omitempty,url"`
	Stock       int             `json:"stock"                 validate:"gte=0"`
	Active      bool            `json:"active"`
}

// Normalize trims free-text fields in place.
func (r *ProductRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

// ProductRequestFrom copies a product into an editable request.
func ProductRequestFrom(p *Product) ProductRequest {
	if p == nil {
		return ProductRequest{Active: true}
	}
	return ProductRequest{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Active:      p.Active,
	}
}
