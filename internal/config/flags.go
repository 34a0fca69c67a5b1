package config

import (
	"fmt"
	"time"

	"github.com/namsral/flag"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/rewrite"
)

var (
	pagesRoot   = flag.String("pages-root", "public", "The directory holding the static site")
	pagesStatus = flag.String("pages-status", "", "The url path for a status page, e.g., /@status")

	rootObject  = flag.String("root-object", "index.html", "The object every non-asset request is rewritten to, relative to the site root")
	assetPolicy = flag.String("asset-policy", rewrite.DefaultPolicy.String(), fmt.Sprintf("How asset paths are recognised, supported values are %s", rewrite.PolicyNames()))
	rewriteMode = flag.String("rewrite-mode", RewriteModeSPA, fmt.Sprintf("%q rewrites non-asset paths to the root object, %q serves paths as requested", RewriteModeSPA, RewriteModeNone))

	metricsAddress         = flag.String("metrics-address", "", "The address to listen on for metrics requests")
	propagateCorrelationID = flag.Bool("propagate-correlation-id", false, "Reuse existing Correlation-ID from the incoming request header `X-Request-ID` if present")
	logFormat              = flag.String("log-format", "json", "The log output format: 'text' or 'json'")
	logVerbose             = flag.Bool("log-verbose", false, "Verbose logging")

	maxConns     = flag.Int("max-conns", 0, "Limit on the number of concurrent connections to the HTTP or proxy listeners, 0 for no limit")
	maxURILength = flag.Int("max-uri-length", 1024, "Limit the length of URI, 0 for unlimited.")

	// HTTP server timeouts
	serverReadTimeout       = flag.Duration("server-read-timeout", 5*time.Second, "ReadTimeout is the maximum duration for reading the entire request, including the body. A zero or negative value means there will be no timeout.")
	serverReadHeaderTimeout = flag.Duration("server-read-header-timeout", time.Second, "ReadHeaderTimeout is the amount of time allowed to read request headers. A zero or negative value means there will be no timeout.")
	serverWriteTimeout      = flag.Duration("server-write-timeout", 0, "WriteTimeout is the maximum duration before timing out writes of the response. A zero or negative value means there will be no timeout.")
	serverKeepAlive         = flag.Duration("server-keep-alive", 15*time.Second, "KeepAlive specifies the keep-alive period for network connections accepted by this listener. If zero, keep-alives are enabled if supported by the protocol and operating system. If negative, keep-alives are disabled.")
	serverShutdownTimeout   = flag.Duration("server-shutdown-timeout", 30*time.Second, "Server shutdown timeout")

	showVersion = flag.Bool("version", false, "Show version")

	// See initFlags()
	listenHTTP    = MultiStringFlag{separator: ","}
	listenProxy   = MultiStringFlag{separator: ","}
	listenProxyv2 = MultiStringFlag{separator: ","}
)

// initFlags will be called from LoadConfig
func initFlags() {
	flag.Var(&listenHTTP, "listen-http", "The address(es) to listen on for HTTP requests")
	flag.Var(&listenProxy, "listen-proxy", "The address(es) to listen on for proxy requests, X-Forwarded-* headers are trusted")
	flag.Var(&listenProxyv2, "listen-proxyv2", "The address(es) to listen on for PROXYv2 requests (https://www.haproxy.org/download/1.8/doc/proxy-protocol.txt)")

	// read from -config=/path/to/pages-spa-rewrite-config
	flag.String(flag.DefaultConfigFlagname, "", "path to config file")

	flag.Parse()
}
