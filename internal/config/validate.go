package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrNoListener          = errors.New("no listener defined, please specify at least one --listen-* flag")
	ErrInvalidRewriteMode  = errors.New("rewrite-mode must be either spa or none")
	ErrInvalidMaxURILength = errors.New("max-uri-length must not be negative")
	ErrInvalidMaxConns     = errors.New("max-conns must not be negative")
	ErrInvalidLogFormat    = errors.New("log-format must be either text or json")
	ErrInvalidStatusPath   = errors.New("pages-status must be an absolute path")
	ErrRootDirNotFound     = errors.New("pages-root must be an existing directory")
)

// Validate checks the config and returns every problem found
func Validate(config *Config) error {
	var result *multierror.Error

	result = multierror.Append(result,
		validateListeners(config),
		validateRewrite(config),
		validateGeneral(config),
		validateLog(config),
	)

	return result.ErrorOrNil()
}

func validateListeners(config *Config) error {
	if len(config.Listeners.HTTP) == 0 &&
		len(config.Listeners.Proxy) == 0 &&
		len(config.Listeners.Proxyv2) == 0 {
		return ErrNoListener
	}

	return nil
}

func validateRewrite(config *Config) error {
	switch config.Rewrite.Mode {
	case RewriteModeSPA, RewriteModeNone:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidRewriteMode, config.Rewrite.Mode)
	}

	_, err := config.Rewrite.Rewriter()
	return err
}

func validateGeneral(config *Config) error {
	var result *multierror.Error

	if config.General.MaxURILength < 0 {
		result = multierror.Append(result, ErrInvalidMaxURILength)
	}

	if config.General.MaxConns < 0 {
		result = multierror.Append(result, ErrInvalidMaxConns)
	}

	if config.General.StatusPath != "" && !strings.HasPrefix(config.General.StatusPath, "/") {
		result = multierror.Append(result, ErrInvalidStatusPath)
	}

	if fi, err := os.Stat(config.General.RootDir); err != nil || !fi.IsDir() {
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrRootDirNotFound, config.General.RootDir))
	}

	return result.ErrorOrNil()
}

func validateLog(config *Config) error {
	switch config.Log.Format {
	case "", "text", "json":
		return nil
	}

	return ErrInvalidLogFormat
}
