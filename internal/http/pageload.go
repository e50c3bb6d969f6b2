package httpx

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// pageLoadField carries the scope on plain form posts.
const pageLoadField = "page_load"

// PageLoad assigns the selection scope of the request.
// A full document GET starts a new page load with a fresh id, so selection slots
// never survive a reload. htmx requests and form posts keep the scope they carry.
// Anything that is not a well-formed id is treated as no scope.
func PageLoad(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := pageLoadID(r)
		if id == "" && isDocumentLoad(r) {
			id = uuid.NewString()
		}
		if id != "" {
			r = r.WithContext(SetPageLoadInContext(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// isDocumentLoad covers plain navigations and htmx history restores,
// both of which render the full layout.
func isDocumentLoad(r *http.Request) bool {
	return r.Method == http.MethodGet && !WantsPartial(r)
}

func pageLoadID(r *http.Request) string {
	if isDocumentLoad(r) {
		return ""
	}
	raw := strings.TrimSpace(r.Header.Get(HeaderPageLoad))
	if raw == "" && r.Method == http.MethodPost &&
		strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		raw = strings.TrimSpace(r.PostFormValue(pageLoadField))
	}
	if raw == "" {
		return ""
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return ""
	}
	return parsed.String()
}
