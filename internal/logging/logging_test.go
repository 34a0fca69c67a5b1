package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	testlog "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gitlab.com/gitlab-org/labkit/correlation"
	"gitlab.com/gitlab-org/labkit/log"
)

func TestRequestFields(t *testing.T) {
	tests := []struct {
		name     string
		fields   FieldsFunc
		expected log.Fields
	}{
		{
			name: "no_extra_fields",
			expected: log.Fields{
				"correlation_id": "abc123",
				"pages_host":     "example.com",
			},
		},
		{
			name: "with_extra_fields",
			fields: func(r *http.Request) logrus.Fields {
				return logrus.Fields{"pages_root_object": "/index.html"}
			},
			expected: log.Fields{
				"correlation_id":    "abc123",
				"pages_host":        "example.com",
				"pages_root_object": "/index.html",
			},
		},
		{
			name: "extra_fields_override",
			fields: func(r *http.Request) logrus.Fields {
				return logrus.Fields{"pages_host": "other.example.com"}
			},
			expected: log.Fields{
				"correlation_id": "abc123",
				"pages_host":     "other.example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://example.com/about", nil)
			req = req.WithContext(correlation.ContextWithCorrelation(req.Context(), "abc123"))

			got := requestFields(tt.fields)(req)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestLogRequest(t *testing.T) {
	hook := testlog.NewGlobal()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/app/dashboard", nil)
	LogRequest(req).Info("hello")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "hello", entry.Message)
	require.Equal(t, "example.com", entry.Data["host"])
	require.Equal(t, "/app/dashboard", entry.Data["path"])
}

func TestAccessLogger(t *testing.T) {
	for _, format := range []string{"", FormatJSON} {
		logger, err := accessLogger(format)
		require.NoError(t, err)
		require.Same(t, logrus.StandardLogger(), logger)
	}

	textLogger, err := accessLogger(FormatText)
	require.NoError(t, err)
	require.NotSame(t, logrus.StandardLogger(), textLogger)
}
