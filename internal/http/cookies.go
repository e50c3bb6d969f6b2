package httpx

import (
	"net/http"
	"time"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
)

// CredentialCookies writes and clears the credential token pair.
type CredentialCookies struct {
	TokenName   string
	RefreshName string
	Domain      string
	// TTL is the cookie lifetime when the API does not report an expiry.
	TTL time.Duration
}

func (c CredentialCookies) tokenName() string {
	if c.TokenName == "" {
		return "token"
	}
	return c.TokenName
}

func (c CredentialCookies) refreshName() string {
	if c.RefreshName == "" {
		return "refresh"
	}
	return c.RefreshName
}

// Set stores the credential. The refresh cookie is only written when the API issued one.
func (c CredentialCookies) Set(w http.ResponseWriter, r *http.Request, cred domainauth.Credential) {
	maxAge := c.maxAge(cred)
	c.write(w, r, c.tokenName(), cred.Token, maxAge)
	if cred.Refresh != "" {
		c.write(w, r, c.refreshName(), cred.Refresh, maxAge)
	}
}

// Clear expires both credential cookies.
// It mirrors the attributes used when setting them so every browser deletes them.
func (c CredentialCookies) Clear(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{c.tokenName(), c.refreshName()} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Domain:   c.Domain,
			HttpOnly: true,
			Secure:   isSecureRequest(r),
			MaxAge:   -1,
			Expires:  time.Unix(0, 0).UTC(),
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (c CredentialCookies) maxAge(cred domainauth.Credential) int {
	if !cred.ExpiresAt.IsZero() {
		if secs := int(time.Until(cred.ExpiresAt).Seconds()); secs > 0 {
			return secs
		}
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return int(ttl.Seconds())
}

func (c CredentialCookies) write(w http.ResponseWriter, r *http.Request, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}
