package httpx

import (
	"net/http"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	"github.com/target/storefront-ui/internal/domain/navigation"
)

// LoginPage renders the sign-in form, or sends a signed-in user to their home region.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if s := GetSessionFromContext(r.Context()); s != nil {
		h.navigate(w, r, h.homeFor(s, r.URL.Query().Get("redirect_uri")))
		return
	}
	data := h.pageData(r, h.meta(navigation.ViewLogin, "Sign in"))
	data["RedirectURI"] = safeRedirectOrEmpty(r.URL.Query().Get("redirect_uri"))
	data["FormData"] = map[string]string{}
	h.renderPage(w, r, data)
}

// RegisterPage renders the account creation form.
func (h *UIHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if s := GetSessionFromContext(r.Context()); s != nil {
		h.navigate(w, r, h.homeFor(s, ""))
		return
	}
	data := h.pageData(r, h.meta(navigation.ViewRegister, "Create account"))
	data["FormData"] = map[string]string{}
	h.renderPage(w, r, data)
}

// Login exchanges credentials for a token pair and stores it in cookies.
// POST /login.
func (h *UIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors := parseLoginForm(r)
	redirectURI := safeRedirectOrEmpty(r.PostFormValue("redirect_uri"))
	meta := h.meta(navigation.ViewLogin, "Sign in")
	extra := map[string]any{
		"RedirectURI": redirectURI,
		"FormData":    map[string]string{"email": req.Email},
	}

	if len(fieldErrors) > 0 {
		h.renderFormError(ErrorOpts{W: w, R: r, FieldErrors: fieldErrors, PageMeta: meta, Data: extra})
		return
	}

	cred, err := h.Auth.Login(r.Context(), req)
	if err != nil {
		h.logger().InfoContext(r.Context(), "login rejected", "error", err)
		h.renderFormError(ErrorOpts{W: w, R: r, Err: err, PageMeta: meta, Data: extra})
		return
	}
	h.signIn(w, r, cred, redirectURI)
}

// Register creates a shopper account and signs it in.
// POST /register.
func (h *UIHandlers) Register(w http.ResponseWriter, r *http.Request) {
	req, fieldErrors := parseRegisterForm(r)
	meta := h.meta(navigation.ViewRegister, "Create account")
	extra := map[string]any{
		"FormData": map[string]string{"name": req.Name, "email": req.Email},
	}

	if len(fieldErrors) > 0 {
		h.renderFormError(ErrorOpts{W: w, R: r, FieldErrors: fieldErrors, PageMeta: meta, Data: extra})
		return
	}

	cred, err := h.Auth.Register(r.Context(), req)
	if err != nil {
		h.renderFormError(ErrorOpts{W: w, R: r, Err: err, PageMeta: meta, Data: extra})
		return
	}
	h.signIn(w, r, cred, "")
}

// signIn stores the credential and leaves the public region with a full navigation,
// so the new chrome and a fresh page load are rendered.
func (h *UIHandlers) signIn(w http.ResponseWriter, r *http.Request, cred domainauth.Credential, redirectURI string) {
	h.Cookies.Set(w, r, cred)
	target := "/shop"
	if s, ok := h.Auth.SessionFor(cred.Token); ok {
		target = h.homeFor(s, redirectURI)
	}
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// homeFor is where a session lands after sign-in: the requested page when its
// region admits the session, otherwise the region home for its role.
func (h *UIHandlers) homeFor(s *domainauth.Session, redirectURI string) string {
	if redirectURI != "" {
		if m, ok := h.routes().Resolve(pathOnly(redirectURI)); ok && s.Role.Satisfies(m.Route.Region.RequiredRole()) {
			if m.Route.Region != navigation.RegionPublic {
				return redirectURI
			}
		}
	}
	if s.IsAdmin() {
		return h.href(navigation.ViewAdminDashboard, "")
	}
	return h.href(navigation.ViewShopHome, "")
}

// Logout revokes the credential best-effort, empties the selection slots and clears cookies.
// POST /logout.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if s, ok := h.sessionFromCookie(r); ok {
		if err := h.Auth.Logout(SetSessionInContext(ctx, s)); err != nil {
			h.logger().WarnContext(ctx, "logout failed", "error", err)
		}
	}
	if scope := PageLoadFromContext(ctx); scope != "" && h.Selection != nil {
		if err := h.Selection.Reset(ctx, scope); err != nil {
			h.logger().WarnContext(ctx, "selection reset failed", "error", err)
		}
	}
	h.Cookies.Clear(w, r)
	setNoStore(w)

	target := h.href(navigation.ViewLogin, "")
	if IsHTMX(r) {
		HTMX(w).Redirect(target)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// AuthStatus reports whether the request carries a credential.
// GET /auth/status.
func (h *UIHandlers) AuthStatus(w http.ResponseWriter, r *http.Request) {
	setNoStore(w)
	s, ok := h.sessionFromCookie(r)
	if !ok {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"subject": s.Subject,
			"email":   s.Email,
			"name":    s.Name,
			"role":    s.Role,
		},
	})
}

func (h *UIHandlers) sessionFromCookie(r *http.Request) (*domainauth.Session, bool) {
	if s := GetSessionFromContext(r.Context()); s != nil {
		return s, true
	}
	c, err := r.Cookie(h.Cookies.tokenName())
	if err != nil {
		return nil, false
	}
	return h.Auth.SessionFor(c.Value)
}

// renderFormError re-renders the current page's form through RenderError.
func (h *UIHandlers) renderFormError(opts ErrorOpts) {
	opts.Renderer = h.renderPageStatus
	if opts.Data == nil {
		opts.Data = map[string]any{}
	}
	opts.Data["CartPollSeconds"] = int(h.summaryInterval().Seconds())
	RenderError(opts)
}

// safeRedirectOrEmpty is safeRedirectPath without the "/" fallback.
func safeRedirectOrEmpty(raw string) string {
	if raw == "" {
		return ""
	}
	p := safeRedirectPath(raw)
	if p == "/" {
		return ""
	}
	return p
}

func pathOnly(uri string) string {
	for i := 0; i < len(uri); i++ {
		if uri[i] == '?' || uri[i] == '#' {
			return uri[:i]
		}
	}
	return uri
}
