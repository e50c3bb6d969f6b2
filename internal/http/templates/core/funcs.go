// Package core provides the template functions shared by every storefront page.
package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/target/storefront-ui/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
	// Href builds the path of a named view; id fills its parameter segment.
	Href func(name, id string) (string, error)
	// CurrencySymbol prefixes money values. Defaults to "$".
	CurrencySymbol string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	symbol := deps.CurrencySymbol
	if symbol == "" {
		symbol = "$"
	}
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"friendlyTime": createFriendlyTimeFunc(),
		"relativeTime": createRelativeTimeFunc(),
		"timeTag":      createTimeTagFunc(),
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"contains":     strings.Contains,
		"formatNumber": formatNumberTemplate,
		"money":        func(v any) string { return FormatMoney(symbol, v) },
		"percent":      FormatPercent,
		"stockClass":   StockClass,
		"truncateText": TruncateText,
		"dict":         Dict,
		"asset":        func(name string) string { return "/static/" + strings.TrimPrefix(name, "/") },
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; values were escaped during execution.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	funcs["href"] = func(name string, id ...string) (string, error) {
		if deps.Href == nil {
			return "", errors.New("href not configured")
		}
		param := ""
		if len(id) > 0 {
			param = id[0]
		}
		return deps.Href(name, param)
	}
}

func asTime(ts any) time.Time {
	switch v := ts.(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	}
	return time.Time{}
}

func createFriendlyTimeFunc() func(any) string {
	return func(ts any) string {
		t0 := asTime(ts)
		if t0.IsZero() {
			return ""
		}
		return uiutil.FormatFriendlyDateTime(t0)
	}
}

func createRelativeTimeFunc() func(any) string {
	return func(ts any) string {
		t0 := asTime(ts)
		if t0.IsZero() {
			return ""
		}
		return uiutil.FriendlyRelativeTime(t0)
	}
}

func createTimeTagFunc() func(any) template.HTML {
	return func(ts any) template.HTML {
		t0 := asTime(ts)
		if t0.IsZero() {
			return ""
		}
		friendly := uiutil.FormatFriendlyDateTime(t0)
		dt := t0.UTC().Format(time.RFC3339)
		title := t0.Local().Format(time.RFC1123)
		// #nosec G203 - built from trusted, escaped values only
		return template.HTML(
			fmt.Sprintf(
				"<time datetime=\"%s\" title=\"%s\">%s</time>",
				dt,
				template.HTMLEscapeString(title),
				template.HTMLEscapeString(friendly),
			),
		)
	}
}

// FormatMoney renders a decimal amount with two places and thousands separators.
func FormatMoney(symbol string, v any) string {
	var d decimal.Decimal
	switch x := v.(type) {
	case decimal.Decimal:
		d = x
	case *decimal.Decimal:
		if x != nil {
			d = *x
		}
	case int:
		d = decimal.NewFromInt(int64(x))
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return x
		}
		d = parsed
	default:
		return fmt.Sprint(v)
	}

	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	if len(whole) > 3 {
		whole = formatWithCommas(whole, false)
	}
	out := symbol + whole + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatPercent renders a fraction such as 0.075 as "7.5%".
func FormatPercent(v decimal.Decimal) string {
	return v.Mul(decimal.NewFromInt(100)).Round(2).String() + "%"
}

// StockClass maps a stock level to a CSS badge modifier.
func StockClass(stock int) string {
	switch {
	case stock <= 0:
		return "badge-danger"
	case stock <= 5:
		return "badge-warning"
	default:
		return "badge-success"
	}
}

// Dict builds a map from alternating keys and values for passing several values to a partial.
func Dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict requires key/value pairs")
	}
	out := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		out[key] = pairs[i+1]
	}
	return out, nil
}

// formatNumberTemplate formats any integer type with comma separators for thousands.
func formatNumberTemplate(v any) string {
	var s string
	var neg bool

	switch x := v.(type) {
	case int:
		s, neg = formatInt64(int64(x))
	case int64:
		s, neg = formatInt64(x)
	case int32:
		s, neg = formatInt64(int64(x))
	case uint:
		s = strconv.FormatUint(uint64(x), 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	default:
		return fmt.Sprint(v)
	}

	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	return formatWithCommas(s, neg)
}

func formatInt64(x int64) (string, bool) {
	if x < 0 {
		return strconv.FormatUint(uint64(-x), 10), true
	}
	return strconv.FormatUint(uint64(x), 10), false
}

func formatWithCommas(s string, neg bool) string {
	var b strings.Builder
	b.Grow(len(s) + (len(s)-1)/3)

	prefix := len(s) % 3
	if prefix == 0 {
		prefix = 3
	}

	b.WriteString(s[:prefix])
	for i := prefix; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// TruncateText truncates a string to a maximum number of runes (not bytes).
func TruncateText(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	return uiutil.TruncateWithEllipsis(s, maxLen)
}
