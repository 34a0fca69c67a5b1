package rewrite

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"gitlab.com/gitlab-org/pages-spa-rewrite/metrics"
)

var echoPath = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "%s?%s", r.URL.Path, r.URL.RawQuery)
})

func TestNewMiddleware(t *testing.T) {
	rw, err := New("index.html", PolicyExtension)
	require.NoError(t, err)

	middleware := NewMiddleware(echoPath, rw)

	tests := map[string]struct {
		url             string
		expectedBody    string
		expectedOutcome string
	}{
		"asset": {
			url:             "/images/logo.png",
			expectedBody:    "/images/logo.png?",
			expectedOutcome: outcomeAsset,
		},
		"route": {
			url:             "/about",
			expectedBody:    "/index.html?",
			expectedOutcome: outcomeRewritten,
		},
		"route_with_query": {
			url:             "/app/dashboard/?tab=2",
			expectedBody:    "/index.html?tab=2",
			expectedOutcome: outcomeRewritten,
		},
		"root": {
			url:             "/",
			expectedBody:    "/index.html?",
			expectedOutcome: outcomeRewritten,
		},
		"escaped_route": {
			url:             "/users/a%2Fb",
			expectedBody:    "/index.html?",
			expectedOutcome: outcomeRewritten,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			counter := metrics.RewriteRequestsTotal.WithLabelValues("extension", tt.expectedOutcome)
			before := testutil.ToFloat64(counter)

			ww := httptest.NewRecorder()
			rr := httptest.NewRequest(http.MethodGet, tt.url, nil)
			originalPath := rr.URL.Path

			middleware.ServeHTTP(ww, rr)

			require.Equal(t, http.StatusOK, ww.Code)
			require.Equal(t, tt.expectedBody, ww.Body.String())
			require.Equal(t, before+1, testutil.ToFloat64(counter))

			// the caller's request is never modified
			require.Equal(t, originalPath, rr.URL.Path)
		})
	}
}

func TestNewMiddlewareDisabled(t *testing.T) {
	middleware := NewMiddleware(echoPath, nil)

	ww := httptest.NewRecorder()
	rr := httptest.NewRequest(http.MethodGet, "/about", nil)

	middleware.ServeHTTP(ww, rr)

	require.Equal(t, "/about?", ww.Body.String())
}

func TestNewMiddlewareAlphanumericPolicy(t *testing.T) {
	rw, err := New("index.html", PolicyAlphanumeric)
	require.NoError(t, err)

	middleware := NewMiddleware(echoPath, rw)

	for url, expected := range map[string]string{
		"/a.b":         "/a.b?",
		"/a.123456789": "/index.html?",
		"/file.d_ts":   "/index.html?",
	} {
		t.Run(url, func(t *testing.T) {
			ww := httptest.NewRecorder()
			middleware.ServeHTTP(ww, httptest.NewRequest(http.MethodGet, url, nil))

			require.Equal(t, expected, ww.Body.String())
		})
	}
}
