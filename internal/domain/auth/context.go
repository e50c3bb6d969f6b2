package auth

import "context"

type sessionKey struct{}

// WithSession returns a child context carrying s. A nil session leaves ctx unchanged.
func WithSession(ctx context.Context, s *Session) context.Context {
	if s == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by WithSession.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(sessionKey{}).(*Session)
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}

// TokenFromContext returns the access token of the session in ctx, or "".
func TokenFromContext(ctx context.Context) string {
	if s, ok := SessionFromContext(ctx); ok {
		return s.Token
	}
	return ""
}
