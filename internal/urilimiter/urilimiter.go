package urilimiter

import (
	"net/http"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/httperrors"
)

// NewMiddleware rejects requests whose request URI is longer than limit.
// A limit of zero or less disables the check.
func NewMiddleware(handler http.Handler, limit int) http.Handler {
	if limit <= 0 {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.RequestURI) > limit {
			httperrors.Serve414(w)

			return
		}

		handler.ServeHTTP(w, r)
	})
}
