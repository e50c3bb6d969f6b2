package httpx

import (
	"net/http"
	"net/url"
)

// PaginationData contains pagination information for list views.
type PaginationData struct {
	Page       int
	PageSize   int
	HasPrev    bool
	HasNext    bool
	StartIndex int
	EndIndex   int
	BasePath   string
}

// TemplateDataBuilder provides a fluent API for building template data maps.
type TemplateDataBuilder struct {
	data map[string]any
}

// NewTemplateData creates a new TemplateDataBuilder initialized with basePageData.
func NewTemplateData(r *http.Request, meta PageMeta) *TemplateDataBuilder {
	return &TemplateDataBuilder{data: basePageData(r, meta)}
}

// WithError sets a general error message.
func (b *TemplateDataBuilder) WithError(msg string) *TemplateDataBuilder {
	b.data["Error"] = true
	b.data["ErrorMessage"] = msg
	return b
}

// WithFieldErrors adds field-level validation errors.
func (b *TemplateDataBuilder) WithFieldErrors(errs map[string]string) *TemplateDataBuilder {
	if len(errs) > 0 {
		b.data["Errors"] = errs
	}
	return b
}

// With adds a custom field to the template data.
func (b *TemplateDataBuilder) With(key string, value any) *TemplateDataBuilder {
	b.data[key] = value
	return b
}

// Build returns the final template data map.
func (b *TemplateDataBuilder) Build() map[string]any {
	return b.data
}

// applyPagination adds pagination data and builds PrevURL/NextURL.
// BasePath defaults to the request path.
func applyPagination(data map[string]any, r *http.Request, opts PaginationData) {
	data["Page"] = opts.Page
	data["PageSize"] = opts.PageSize
	data["HasPrev"] = opts.HasPrev
	data["HasNext"] = opts.HasNext
	data["StartIndex"] = opts.StartIndex
	data["EndIndex"] = opts.EndIndex

	basePath := opts.BasePath
	if basePath == "" && r != nil {
		basePath = r.URL.Path
	}
	var q url.Values
	if r != nil {
		q = r.URL.Query()
	}
	if opts.HasPrev {
		data["PrevURL"] = buildPageURL(basePath, q, pageOpts{Page: opts.Page - 1, PageSize: opts.PageSize})
	}
	if opts.HasNext {
		data["NextURL"] = buildPageURL(basePath, q, pageOpts{Page: opts.Page + 1, PageSize: opts.PageSize})
	}
}
