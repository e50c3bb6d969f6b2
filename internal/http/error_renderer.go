package httpx

import (
	"net/http"

	apperrors "github.com/target/storefront-ui/internal/errors"
)

// ErrorRenderer is a function that renders a page template with the given data and status.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data any, status int)

// ErrorOpts contains all options needed to render an error response.
type ErrorOpts struct {
	W http.ResponseWriter
	R *http.Request
	// Err is the error that occurred (optional, can be nil if only field errors)
	Err error
	// FieldErrors contains field-level validation errors (field name → error message)
	FieldErrors map[string]string
	// Renderer renders the page again with the errors; typically h.renderPageStatus.
	Renderer ErrorRenderer
	PageMeta PageMeta
	// Data preserves submitted form values and dropdown options.
	Data map[string]any
	// StatusCode overrides DetermineErrorStatus when non-zero.
	StatusCode int
	// ShowToast also raises a toast with the general message.
	ShowToast bool
}

// DetermineErrorStatus picks the status for a form re-render.
// htmx swaps only 2xx bodies by default, so partial requests stay at 200.
func DetermineErrorStatus(r *http.Request, err error) int {
	if err == nil || (r != nil && IsHTMX(r)) {
		return http.StatusOK
	}
	return apperrors.HTTPStatus(err)
}

// RenderError re-renders a page with field and general error messages.
// Validation errors coming back from the store API keep their per-field messages.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)

	fieldErrors := mergeFieldErrors(opts.FieldErrors, apperrors.FieldErrors(opts.Err))
	if field := apperrors.GetField(opts.Err); field != "" {
		if _, ok := fieldErrors[field]; !ok {
			fieldErrors[field] = apperrors.UserMessage(opts.Err)
		}
	}
	builder.WithFieldErrors(fieldErrors)

	generalError := ""
	switch {
	case opts.Err != nil && len(fieldErrors) == 0:
		generalError = apperrors.UserMessage(opts.Err)
	case len(fieldErrors) > 0:
		generalError = errMsgFixBelow
	}
	if generalError != "" {
		builder.WithError(generalError)
	}

	for k, v := range opts.Data {
		builder.With(k, v)
	}

	if opts.ShowToast && generalError != "" {
		triggerToast(opts.W, generalError, "error")
	}

	status := opts.StatusCode
	if status == 0 {
		status = DetermineErrorStatus(opts.R, opts.Err)
		if opts.Err == nil && len(fieldErrors) > 0 && !IsHTMX(opts.R) {
			status = http.StatusUnprocessableEntity
		}
	}
	opts.Renderer(opts.W, opts.R, builder.Build(), status)
}

func mergeFieldErrors(sets ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, set := range sets {
		for k, v := range set {
			if _, ok := out[k]; !ok {
				out[k] = v
			}
		}
	}
	return out
}
