package healthcheck

import (
	"net/http"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/logging"
)

// Check reports whether the server is able to serve requests
type Check func() error

// NewMiddleware is serving the application status check. The status page
// answers 503 while check fails. An empty statusPath disables the middleware.
func NewMiddleware(handler http.Handler, statusPath string, check Check) http.Handler {
	if statusPath == "" {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != statusPath {
			handler.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Cache-Control", "no-store")

		if check != nil {
			if err := check(); err != nil {
				logging.LogRequest(r).WithError(err).Warn("status check failed")

				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("failure\n"))
				return
			}
		}

		w.Write([]byte("success\n"))
	})
}
