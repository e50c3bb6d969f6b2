package httpx

import (
	"context"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
)

// SetSessionInContext returns a child context that carries the given session.
// The store API client reads the credential from the same key.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	return domainauth.WithSession(ctx, session)
}

// GetSessionFromContext retrieves the session from the request context, or nil.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := domainauth.SessionFromContext(ctx); ok {
		return s
	}
	return nil
}

// IsGuestUser reports whether the current request context is unauthenticated or a guest session.
func IsGuestUser(ctx context.Context) bool {
	s := GetSessionFromContext(ctx)
	return s == nil || s.IsGuest()
}

type pageLoadKey struct{}

// SetPageLoadInContext stores the page-load scope for selection slots.
func SetPageLoadInContext(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, pageLoadKey{}, id)
}

// PageLoadFromContext returns the page-load scope, or "" when the request has none.
func PageLoadFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(pageLoadKey{}).(string); ok {
		return id
	}
	return ""
}
