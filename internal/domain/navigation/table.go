package navigation

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"
)

// Match is the result of resolving a path against the table.
type Match struct {
	Route  Route
	Params map[string]string
}

// Param returns the named parameter extracted from the path.
func (m Match) Param(name string) string {
	return m.Params[name]
}

type entry struct {
	route Route
	segs  []segment
}

// Table resolves paths to routes. Entries are held in specificity order,
// so the first matching entry is the single most specific one.
// A Table is immutable after construction and safe for concurrent use.
type Table struct {
	entries []entry
	byName  map[string]int
}

// Errors returned by NewTable.
var (
	ErrDuplicateName = errors.New("duplicate route name")
	ErrAmbiguous     = errors.New("ambiguous route pattern")
	ErrRegionPrefix  = errors.New("route outside its region prefix")
)

// NewTable validates the routes and orders them by specificity.
// Two routes with the same segment shape (ignoring parameter names) are rejected.
// Declaration order has no effect on resolution.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		entries: make([]entry, 0, len(routes)),
		byName:  make(map[string]int, len(routes)),
	}
	shapes := make(map[string]string, len(routes))
	names := make(map[string]struct{}, len(routes))

	for _, r := range routes {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("route %q has no name", r.Pattern)
		}
		if !r.Region.valid() {
			return nil, fmt.Errorf("route %q has unknown region %q", r.Name, r.Region)
		}
		segs, err := parsePattern(r.Pattern)
		if err != nil {
			return nil, err
		}
		if err := checkRegionPrefix(r); err != nil {
			return nil, err
		}
		if _, dup := names[r.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}
		names[r.Name] = struct{}{}

		key := shapeKey(segs)
		if other, dup := shapes[key]; dup {
			return nil, fmt.Errorf("%w: %s and %s both match %s", ErrAmbiguous, other, r.Pattern, key)
		}
		shapes[key] = r.Pattern

		t.entries = append(t.entries, entry{route: r, segs: segs})
	}

	sort.SliceStable(t.entries, func(i, j int) bool {
		return moreSpecific(t.entries[i].segs, t.entries[j].segs)
	})
	for i, e := range t.entries {
		t.byName[e.route.Name] = i
	}
	return t, nil
}

// MustTable is NewTable for static tables defined at startup.
func MustTable(routes ...Route) *Table {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

func checkRegionPrefix(r Route) error {
	prefix := r.Region.Prefix()
	if prefix == "" {
		for _, gated := range []Region{RegionShopper, RegionAdmin} {
			if underPrefix(r.Pattern, gated.Prefix()) {
				return fmt.Errorf("%w: public route %s under %s", ErrRegionPrefix, r.Pattern, gated.Prefix())
			}
		}
		return nil
	}
	if !underPrefix(r.Pattern, prefix) {
		return fmt.Errorf("%w: %s route %s not under %s", ErrRegionPrefix, r.Region, r.Pattern, prefix)
	}
	return nil
}

func underPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

// moreSpecific orders a before b when, at the first position where they differ
// in kind, a has a literal and b a parameter. Ties fall back to segment count
// (longer first) and then to the literal text so the order is total.
func moreSpecific(a, b []segment) bool {
	n := min(len(a), len(b))
	for i := range n {
		if a[i].isParam() != b[i].isParam() {
			return !a[i].isParam()
		}
	}
	if len(a) != len(b) {
		return len(a) > len(b)
	}
	return shapeKey(a) < shapeKey(b)
}

// Resolve maps a request path to exactly one route.
// Trailing slashes and duplicate separators are normalized; an empty
// parameter value never matches.
func (t *Table) Resolve(p string) (Match, bool) {
	if t == nil || !strings.HasPrefix(p, "/") {
		return Match{}, false
	}
	parts := splitPath(path.Clean(p))
	for _, e := range t.entries {
		if params, ok := matchSegments(e.segs, parts); ok {
			return Match{Route: e.route, Params: params}, true
		}
	}
	return Match{}, false
}

func matchSegments(segs []segment, parts []string) (map[string]string, bool) {
	if len(segs) != len(parts) {
		return nil, false
	}
	var params map[string]string
	for i, s := range segs {
		if s.isParam() {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[s.param] = parts[i]
			continue
		}
		if s.literal != parts[i] {
			return nil, false
		}
	}
	return params, true
}

// Routes returns the entries in resolution order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.route
	}
	return out
}

// InRegion returns the routes of one region in resolution order.
func (t *Table) InRegion(region Region) []Route {
	var out []Route
	for _, e := range t.entries {
		if e.route.Region == region {
			out = append(out, e.route)
		}
	}
	return out
}

// Lookup finds a route by name.
func (t *Table) Lookup(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.entries[i].route, true
}

// Href builds the path for a named route, substituting the identifier for
// its parameter segment. Routes without a parameter ignore id.
func (t *Table) Href(name, id string) (string, error) {
	i, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("unknown route %q", name)
	}
	e := t.entries[i]
	if len(e.segs) == 0 {
		return "/", nil
	}
	var b strings.Builder
	for _, s := range e.segs {
		b.WriteByte('/')
		if !s.isParam() {
			b.WriteString(s.literal)
			continue
		}
		if id == "" {
			return "", fmt.Errorf("route %q requires %q", name, s.param)
		}
		b.WriteString(url.PathEscape(id))
	}
	return b.String(), nil
}
