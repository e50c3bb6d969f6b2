// Package navigation holds the declarative route table that maps request paths
// to views and access regions. It is pure and knows nothing about HTTP.
package navigation

import (
	"fmt"
	"strings"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
)

// Region partitions the route table by access requirement.
type Region string

const (
	RegionPublic  Region = "public"
	RegionShopper Region = "shopper"
	RegionAdmin   Region = "admin"
)

// Prefix returns the path prefix every route of the region must live under.
// Public routes have no prefix.
func (r Region) Prefix() string {
	switch r {
	case RegionShopper:
		return "/shop"
	case RegionAdmin:
		return "/admin"
	default:
		return ""
	}
}

// RequiredRole is the minimum session role for views in the region.
func (r Region) RequiredRole() domainauth.Role {
	switch r {
	case RegionShopper:
		return domainauth.RoleCustomer
	case RegionAdmin:
		return domainauth.RoleAdmin
	default:
		return domainauth.RoleGuest
	}
}

// Gated reports whether the region requires a credential.
func (r Region) Gated() bool { return r == RegionShopper || r == RegionAdmin }

func (r Region) valid() bool {
	switch r {
	case RegionPublic, RegionShopper, RegionAdmin:
		return true
	default:
		return false
	}
}

// Route is one immutable entry of the table.
// Pattern is slash separated and may contain a single ":name" parameter segment.
type Route struct {
	Name    string
	Pattern string
	Region  Region
}

// Param returns the parameter name declared by the pattern, or "".
func (r Route) Param() string {
	for _, s := range splitPath(r.Pattern) {
		if strings.HasPrefix(s, ":") {
			return s[1:]
		}
	}
	return ""
}

// segment is a parsed path element: a literal or a named parameter.
type segment struct {
	literal string
	param   string
}

func (s segment) isParam() bool { return s.param != "" }

func parsePattern(pattern string) ([]segment, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("pattern %q must start with /", pattern)
	}
	if pattern != "/" && strings.HasSuffix(pattern, "/") {
		return nil, fmt.Errorf("pattern %q must not end with /", pattern)
	}

	parts := splitPath(pattern)
	segs := make([]segment, 0, len(parts))
	params := 0
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("pattern %q has an empty segment", pattern)
		}
		if !strings.HasPrefix(p, ":") {
			segs = append(segs, segment{literal: p})
			continue
		}
		name := p[1:]
		if !validParamName(name) {
			return nil, fmt.Errorf("pattern %q has invalid parameter %q", pattern, p)
		}
		params++
		if params > 1 {
			return nil, fmt.Errorf("pattern %q declares more than one parameter", pattern)
		}
		segs = append(segs, segment{param: name})
	}
	return segs, nil
}

func validParamName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// splitPath splits a cleaned path into segments. "/" yields no segments.
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// shapeKey collapses parameter names so /a/:id and /a/:slug compare equal.
func shapeKey(segs []segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		if s.isParam() {
			b.WriteByte(':')
			continue
		}
		b.WriteString(s.literal)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}
