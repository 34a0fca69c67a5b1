package urilimiter

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("served " + r.URL.Path))
	})

	longRoute := "/" + strings.Repeat("a", 40)

	tests := []struct {
		name         string
		limit        int
		target       string
		expectedCode int
	}{
		{name: "disabled", limit: 0, target: longRoute, expectedCode: http.StatusOK},
		{name: "negative_disables", limit: -1, target: longRoute, expectedCode: http.StatusOK},
		{name: "route_at_limit", limit: 17, target: "/about?tab=a#team", expectedCode: http.StatusOK},
		{name: "route_over_limit", limit: 17, target: "/abouts?tab=a#team", expectedCode: http.StatusRequestURITooLong},
		{name: "query_counts_towards_limit", limit: 17, target: "/about?tab=aa#team", expectedCode: http.StatusRequestURITooLong},
		{name: "asset_over_limit", limit: 16, target: "/assets/app.min.js", expectedCode: http.StatusRequestURITooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)

			NewMiddleware(next, tt.limit).ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				require.True(t, strings.HasPrefix(w.Body.String(), "served /"))
			} else {
				require.Contains(t, w.Body.String(), "Request URI Too Long")
			}
		})
	}
}
