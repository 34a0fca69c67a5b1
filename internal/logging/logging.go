package logging

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"
	"gitlab.com/gitlab-org/labkit/log"
)

const (
	// FormatJSON writes structured logs and a structured access log
	FormatJSON = "json"
	// FormatText writes text logs and a combined access log
	FormatText = "text"
)

// FieldsFunc adds request-specific fields to access log entries
type FieldsFunc func(r *http.Request) logrus.Fields

// ConfigureLogging will initialize the system logger. An empty format means
// FormatJSON.
func ConfigureLogging(format string, verbose bool) error {
	level := "info"
	if verbose {
		level = "trace"
	}

	_, err := log.Initialize(
		log.WithFormatter(formatOrDefault(format)),
		log.WithLogLevel(level),
	)
	return err
}

func formatOrDefault(format string) string {
	if format == "" {
		return FormatJSON
	}

	return format
}

// accessLogger writes to the standard logger, except for the text format
// which gets its own logger using the combined HTTP log format
func accessLogger(format string) (*logrus.Logger, error) {
	if formatOrDefault(format) != FormatText {
		return logrus.StandardLogger(), nil
	}

	combined := log.New()
	if _, err := log.Initialize(log.WithLogger(combined), log.WithFormatter("combined")); err != nil {
		return nil, err
	}

	return combined, nil
}

// BasicAccessLogger wraps handler with the access log middleware. fields may
// be nil.
func BasicAccessLogger(handler http.Handler, format string, fields FieldsFunc) (http.Handler, error) {
	logger, err := accessLogger(format)
	if err != nil {
		return nil, err
	}

	return log.AccessLogger(handler,
		log.WithExtraFields(requestFields(fields)),
		log.WithAccessLogger(logger),
		log.WithXFFAllowed(func(string) bool { return false }),
	), nil
}

// requestFields always logs the correlation id and host; fields can add to
// or override them
func requestFields(fields FieldsFunc) log.ExtraFieldsGeneratorFunc {
	return func(r *http.Request) log.Fields {
		result := log.Fields{
			"correlation_id": correlation.ExtractFromContext(r.Context()),
			"pages_host":     r.Host,
		}

		if fields == nil {
			return result
		}

		for k, v := range fields(r) {
			result[k] = v
		}

		return result
	}
}

// LogRequest returns an entry carrying the request correlation id, host and path
func LogRequest(r *http.Request) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"correlation_id": correlation.ExtractFromContext(r.Context()),
		"host":           r.Host,
		"path":           r.URL.Path,
	})
}
