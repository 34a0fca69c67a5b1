package rewrite

import (
	"net/http"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/logging"
	"gitlab.com/gitlab-org/pages-spa-rewrite/metrics"
)

const (
	outcomeAsset     = "asset"
	outcomeRewritten = "rewritten"
)

// NewMiddleware returns middleware that serves the root object for every
// request path that is not asset-like. The query string is kept. A nil
// rewriter disables the middleware.
func NewMiddleware(handler http.Handler, rw *Rewriter) http.Handler {
	if rw == nil {
		return handler
	}

	policy := rw.Policy().String()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rw.IsAsset(r.URL.Path) {
			metrics.RewriteRequestsTotal.WithLabelValues(policy, outcomeAsset).Inc()
			handler.ServeHTTP(w, r)

			return
		}

		metrics.RewriteRequestsTotal.WithLabelValues(policy, outcomeRewritten).Inc()
		logging.LogRequest(r).WithField("rewritten_path", rw.Target()).Debug("rewriting request to root object")

		handler.ServeHTTP(w, withPath(r, rw.Target()))
	})
}

func withPath(r *http.Request, path string) *http.Request {
	r2 := new(http.Request)
	*r2 = *r

	u := *r.URL
	u.Path = path
	u.RawPath = ""
	r2.URL = &u

	return r2
}
