package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
)

func TestSessionContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetSessionFromContext(ctx))
	assert.True(t, IsGuestUser(ctx))

	s := &domainauth.Session{Token: "tok", Role: domainauth.RoleCustomer}
	ctx = SetSessionInContext(ctx, s)
	assert.Same(t, s, GetSessionFromContext(ctx))
	assert.False(t, IsGuestUser(ctx))
	assert.Equal(t, "tok", domainauth.TokenFromContext(ctx))
}

func TestPageLoadContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, PageLoadFromContext(ctx))
	assert.Empty(t, PageLoadFromContext(SetPageLoadInContext(ctx, "")))
	assert.Equal(t, "pl-1", PageLoadFromContext(SetPageLoadInContext(ctx, "pl-1")))
}

func TestContentTemplateFor(t *testing.T) {
	assert.Equal(t, "shop-cart-content", ContentTemplateFor("shop-cart"))
	assert.Equal(t, "admin-product-form-content", ContentTemplateFor("admin-product-create"))
	assert.Equal(t, "not-found-content", ContentTemplateFor("nope"))
}
