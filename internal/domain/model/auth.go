package model

import "strings"

// LoginRequest carries shopper or admin credentials to the API.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// Normalize trims and lower-cases the email.
func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// RegisterRequest creates a shopper account.
type RegisterRequest struct {
	Name            string `json:"name"     validate:"required,max=120"`
	Email           string `json:"email"    validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"-"        validate:"eqfield=Password" form:"confirm_password"`
}

// Normalize trims fields and lower-cases the email.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}
