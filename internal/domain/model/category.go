package model

import (
	"strings"
	"time"
)

// Category groups products in the catalog.
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryRequest is the payload for creating or updating a category.
type CategoryRequest struct {
	Name        string `json:"name"                  validate:"required,max=120"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	ImageURL    string `json:"image_url,omitempty"   validate:"omitempty,url"`
}

// Normalize trims fields in place.
func (r *CategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

// CategoryRequestFrom copies a category into an editable request.
func CategoryRequestFrom(c *Category) CategoryRequest {
	if c == nil {
		return CategoryRequest{}
	}
	return CategoryRequest{Name: c.Name, Description: c.Description, ImageURL: c.ImageURL}
}
