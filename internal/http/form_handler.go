package httpx

import (
	"context"
	"net/http"
)

// FormParser parses form data from an HTTP request and returns the parsed data
// along with any field-level validation errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormService defines the interface for services that support Create and Update operations.
type FormService[T any] interface {
	Create(ctx context.Context, req T) (any, error)
	Update(ctx context.Context, id string, req T) (any, error)
}

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W       http.ResponseWriter
	R       *http.Request
	Mode    FormMode
	Parser  FormParser[T]
	Service FormService[T]
	// Renderer re-renders the form with errors and the submitted values.
	Renderer ErrorRenderer
	PageMeta PageMeta
	// ExtraData is merged into the template data on error (dropdown options, ids).
	ExtraData map[string]any
	// OnSuccess finishes the request after a successful save.
	OnSuccess func(w http.ResponseWriter, r *http.Request, saved any)
	// Optional: function to extract ID from request (defaults to r.PathValue("id"))
	GetID func(r *http.Request) string
	// Intercept handles errors that must not render inline, reporting whether it did.
	Intercept func(w http.ResponseWriter, r *http.Request, err error) bool
}

// HandleForm is a generic form handler that processes Create and Update workflows.
// It handles form parsing, validation, service calls, error handling, and the success step.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if !validateFormOptions(opts) {
		return
	}

	id, ok := checkFormID(opts)
	if !ok {
		return
	}

	data, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, nil, data)
		return
	}

	saved, err := executeFormOperation(opts, id, data)
	if err != nil {
		if opts.Intercept != nil && opts.Intercept(opts.W, opts.R, err) {
			return
		}
		opts.renderFormError(nil, err, data)
		return
	}

	opts.OnSuccess(opts.W, opts.R, saved)
}

func validateFormOptions[T any](opts FormHandlerOpts[T]) bool {
	if opts.Parser == nil || opts.Service == nil || opts.Renderer == nil || opts.OnSuccess == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return false
	}

	switch opts.Mode {
	case FormModeEdit, FormModeCreate:
		return true
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return false
	}
}

// checkFormID checks and returns the ID for edit mode. Returns empty string and true for create mode.
func checkFormID[T any](opts FormHandlerOpts[T]) (string, bool) {
	if opts.Mode != FormModeEdit {
		return "", true
	}

	id := getFormID(opts)
	if id == "" {
		http.NotFound(opts.W, opts.R)
		return "", false
	}
	return id, true
}

func executeFormOperation[T any](opts FormHandlerOpts[T], id string, data T) (any, error) {
	if opts.Mode == FormModeEdit {
		return opts.Service.Update(opts.R.Context(), id, data)
	}
	return opts.Service.Create(opts.R.Context(), data)
}

func getFormID[T any](opts FormHandlerOpts[T]) string {
	if opts.GetID != nil {
		return opts.GetID(opts.R)
	}
	return opts.R.PathValue("id")
}

// renderFormError renders the form with errors and preserves form data.
func (fh FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, err error, data T) {
	extra := make(map[string]any, len(fh.ExtraData)+2)
	for k, v := range fh.ExtraData {
		extra[k] = v
	}
	extra["Mode"] = string(fh.Mode)
	extra["FormData"] = data

	RenderError(ErrorOpts{
		W:           fh.W,
		R:           fh.R,
		Err:         err,
		FieldErrors: fieldErrors,
		Renderer:    fh.Renderer,
		PageMeta:    fh.PageMeta,
		Data:        extra,
	})
}
