package httperrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	testlog "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestGenerateErrorHTML(t *testing.T) {
	c := content{
		status:    http.StatusNotFound,
		title:     "Title <script>",
		header:    "Header test",
		subHeader: "<p>subheader text</p>",
	}

	actual := generateErrorHTML(c)
	require.Contains(t, actual, "Title &lt;script&gt;")
	require.Contains(t, actual, "<h1>404</h1>")
	require.Contains(t, actual, c.header)
	require.Contains(t, actual, c.subHeader)
}

func TestServeErrorPages(t *testing.T) {
	tests := map[string]struct {
		serve          func(http.ResponseWriter)
		expectedStatus int
		expectedHeader string
	}{
		"404": {serve: Serve404, expectedStatus: http.StatusNotFound, expectedHeader: content404.header},
		"405": {serve: Serve405, expectedStatus: http.StatusMethodNotAllowed, expectedHeader: content405.header},
		"414": {serve: Serve414, expectedStatus: http.StatusRequestURITooLong, expectedHeader: content414.header},
		"500": {serve: Serve500, expectedStatus: http.StatusInternalServerError, expectedHeader: content500.header},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.serve(w)

			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
			require.Contains(t, w.Body.String(), tt.expectedHeader)
		})
	}
}

func TestServe500WithRequest(t *testing.T) {
	hook := testlog.NewGlobal()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "http://example.com/index.html", nil)

	Serve500WithRequest(w, r, "failed to open file", errors.New("permission denied"))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "failed to open file", entry.Message)
	require.Equal(t, "/index.html", entry.Data["path"])
	require.EqualError(t, entry.Data["error"].(error), "permission denied")
}
