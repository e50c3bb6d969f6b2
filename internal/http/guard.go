package httpx

import (
	"log/slog"
	"net/http"
	"strings"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/navigation"
	"github.com/target/storefront-ui/internal/observability/metrics"
	"github.com/target/storefront-ui/internal/observability/statsd"
)

// SessionResolver derives a session from a credential token without a network call.
type SessionResolver interface {
	SessionFor(token string) (*domainauth.Session, bool)
}

// SessionGuardOptions groups dependencies for SessionGuard.
type SessionGuardOptions struct {
	Sessions    SessionResolver  // Required: token -> session
	TokenCookie string           // Optional: credential cookie name (default "token")
	Forbidden   http.HandlerFunc // Optional: renders the access-denied page
	Metrics     statsd.Sink      // Optional: guard decision counters
	Logger      *slog.Logger     // Optional: structured logger
}

// SessionGuard gates regions of the route table on the presence of the credential cookie.
// Presence of a non-empty token is proof of authentication; nothing is verified here.
type SessionGuard struct {
	sessions    SessionResolver
	tokenCookie string
	forbidden   http.HandlerFunc
	metrics     statsd.Sink
	logger      *slog.Logger
}

// NewSessionGuard constructs a SessionGuard.
func NewSessionGuard(opts SessionGuardOptions) *SessionGuard {
	if opts.Sessions == nil {
		panic("SessionResolver is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cookie := strings.TrimSpace(opts.TokenCookie)
	if cookie == "" {
		cookie = "token"
	}
	forbidden := opts.Forbidden
	if forbidden == nil {
		forbidden = func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "Access denied", http.StatusForbidden)
		}
	}
	return &SessionGuard{
		sessions:    opts.Sessions,
		tokenCookie: cookie,
		forbidden:   forbidden,
		metrics:     opts.Metrics,
		logger:      logger.With("component", "session_guard"),
	}
}

// session reads the credential cookie. Any read failure means no token.
func (g *SessionGuard) session(r *http.Request) (*domainauth.Session, bool) {
	c, err := r.Cookie(g.tokenCookie)
	if err != nil {
		return nil, false
	}
	return g.sessions.SessionFor(c.Value)
}

// Attach adds the session to the request context when a credential is present.
// It never blocks; public views use it to adapt their chrome.
func (g *SessionGuard) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, ok := g.session(r); ok {
			r = r.WithContext(SetSessionInContext(r.Context(), s))
		}
		next.ServeHTTP(w, r)
	})
}

// Require gates next behind region's role. Public regions only attach the session.
func (g *SessionGuard) Require(region navigation.Region) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !region.Gated() {
			return g.Attach(next)
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			setNoStore(w)

			s, ok := g.session(r)
			if !ok {
				metrics.EmitGuardDecision(g.metrics, string(region), metrics.GuardRedirected)
				g.logger.DebugContext(r.Context(), "no credential, redirecting to login",
					"region", region, "path", r.URL.Path, "htmx", IsHTMX(r))
				redirectToLogin(w, r)
				return
			}

			ctx := SetSessionInContext(r.Context(), s)
			r = r.WithContext(ctx)
			if !s.Role.Satisfies(region.RequiredRole()) {
				metrics.EmitGuardDecision(g.metrics, string(region), metrics.GuardForbidden)
				g.logger.InfoContext(ctx, "insufficient role",
					"region", region, "role", s.Role, "path", r.URL.Path)
				g.forbidden(w, r)
				return
			}

			metrics.EmitGuardDecision(g.metrics, string(region), metrics.GuardAllowed)
			next.ServeHTTP(w, r)
		})
	}
}
