package config

import (
	"strings"
	"time"

	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/rewrite"
)

const (
	// RewriteModeSPA rewrites every non-asset request to the root object
	RewriteModeSPA = "spa"
	// RewriteModeNone serves every request path as is
	RewriteModeNone = "none"
)

// Config stores all the config options
type Config struct {
	General   General
	Rewrite   Rewrite
	Listeners Listeners
	Log       Log
	Server    Server
}

// General groups settings that can not be categorized under other head.
type General struct {
	RootDir                string
	StatusPath             string
	MetricsAddress         string
	MaxConns               int
	MaxURILength           int
	PropagateCorrelationID bool
	ShowVersion            bool
}

// Rewrite groups the root object rewrite settings
type Rewrite struct {
	Mode       string
	RootObject string
	Policy     string
}

// Listeners groups the addresses of the HTTP, proxy and PROXYv2 listeners
type Listeners struct {
	HTTP    []string
	Proxy   []string
	Proxyv2 []string
}

// Log groups settings related to configuring logging
type Log struct {
	Format  string
	Verbose bool
}

// Server groups HTTP server settings
type Server struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ListenKeepAlive   time.Duration
	ShutdownTimeout   time.Duration
}

// Rewriter builds the rewriter described by the settings. It returns nil
// without error when rewriting is disabled.
func (r Rewrite) Rewriter() (*rewrite.Rewriter, error) {
	if r.Mode == RewriteModeNone {
		return nil, nil
	}

	policy, err := rewrite.ParsePolicy(r.Policy)
	if err != nil {
		return nil, err
	}

	return rewrite.New(r.RootObject, policy)
}

func loadConfig() (*Config, error) {
	config := &Config{
		General: General{
			RootDir:                *pagesRoot,
			StatusPath:             *pagesStatus,
			MetricsAddress:         *metricsAddress,
			MaxConns:               *maxConns,
			MaxURILength:           *maxURILength,
			PropagateCorrelationID: *propagateCorrelationID,
			ShowVersion:            *showVersion,
		},
		Rewrite: Rewrite{
			Mode:       strings.ToLower(*rewriteMode),
			RootObject: *rootObject,
			Policy:     *assetPolicy,
		},
		Listeners: Listeners{
			HTTP:    listenHTTP.Split(),
			Proxy:   listenProxy.Split(),
			Proxyv2: listenProxyv2.Split(),
		},
		Log: Log{
			Format:  *logFormat,
			Verbose: *logVerbose,
		},
		Server: Server{
			ReadTimeout:       *serverReadTimeout,
			ReadHeaderTimeout: *serverReadHeaderTimeout,
			WriteTimeout:      *serverWriteTimeout,
			ListenKeepAlive:   *serverKeepAlive,
			ShutdownTimeout:   *serverShutdownTimeout,
		},
	}

	if config.General.ShowVersion {
		return config, nil
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LogConfig logs the effective configuration at debug level
func LogConfig(config *Config) {
	log.WithFields(log.Fields{
		"asset-policy":               config.Rewrite.Policy,
		"default-config-filename":    flag.DefaultConfigFlagname,
		"listen-http":                config.Listeners.HTTP,
		"listen-proxy":               config.Listeners.Proxy,
		"listen-proxyv2":             config.Listeners.Proxyv2,
		"log-format":                 config.Log.Format,
		"max-conns":                  config.General.MaxConns,
		"max-uri-length":             config.General.MaxURILength,
		"metrics-address":            config.General.MetricsAddress,
		"pages-root":                 config.General.RootDir,
		"pages-status":               config.General.StatusPath,
		"propagate-correlation-id":   config.General.PropagateCorrelationID,
		"rewrite-mode":               config.Rewrite.Mode,
		"root-object":                config.Rewrite.RootObject,
		"server-read-timeout":        config.Server.ReadTimeout,
		"server-read-header-timeout": config.Server.ReadHeaderTimeout,
		"server-write-timeout":       config.Server.WriteTimeout,
		"server-keep-alive":          config.Server.ListenKeepAlive,
		"server-shutdown-timeout":    config.Server.ShutdownTimeout,
	}).Debug("Start daemon with configuration")
}

// LoadConfig parses configuration settings passed as command line arguments or
// via config file, and populates a Config object with those values
func LoadConfig() (*Config, error) {
	initFlags()

	return loadConfig()
}
