package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"

	cfg "gitlab.com/gitlab-org/pages-spa-rewrite/internal/config"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/healthcheck"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/logging"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/rejectmethods"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/rewrite"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/serving/disk"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/urilimiter"
	"gitlab.com/gitlab-org/pages-spa-rewrite/metrics"
)

type theApp struct {
	config   *cfg.Config
	disk     *disk.Disk
	rewriter *rewrite.Rewriter
}

func newApp(config *cfg.Config) (*theApp, error) {
	site, err := disk.New(config.General.RootDir)
	if err != nil {
		return nil, err
	}

	rewriter, err := config.Rewrite.Rewriter()
	if err != nil {
		return nil, err
	}

	a := &theApp{
		config:   config,
		disk:     site,
		rewriter: rewriter,
	}

	if err := a.checkRootObject(); err != nil {
		logrus.WithError(err).Warn("root object is missing from the site root, route requests will fail until it is deployed")
	}

	return a, nil
}

// checkRootObject fails while rewriting is enabled and the root object can
// not be served
func (a *theApp) checkRootObject() error {
	if a.rewriter == nil {
		return nil
	}

	return a.disk.CheckObject(a.rewriter.Target())
}

// buildHandler returns the request pipeline, outermost middleware last
func (a *theApp) buildHandler() (http.Handler, error) {
	var handler http.Handler = a.disk
	handler = rewrite.NewMiddleware(handler, a.rewriter)
	handler = healthcheck.NewMiddleware(handler, a.config.General.StatusPath, a.checkRootObject)
	handler = urilimiter.NewMiddleware(handler, a.config.General.MaxURILength)
	handler = rejectmethods.NewMiddleware(handler)
	handler = promhttp.InstrumentHandlerCounter(metrics.ProcessedRequests, handler)
	handler = promhttp.InstrumentHandlerInFlight(metrics.SessionsActive, handler)

	handler, err := logging.BasicAccessLogger(handler, a.config.Log.Format, a.accessLogFields)
	if err != nil {
		return nil, fmt.Errorf("configuring access logger: %w", err)
	}

	var correlationOpts []correlation.InboundHandlerOption
	if a.config.General.PropagateCorrelationID {
		correlationOpts = append(correlationOpts, correlation.WithPropagation())
	}

	return correlation.InjectCorrelationID(handler, correlationOpts...), nil
}

// accessLogFields records whether the request path was served as is or
// rewritten to the root object
func (a *theApp) accessLogFields(r *http.Request) logrus.Fields {
	if a.rewriter == nil {
		return nil
	}

	return logrus.Fields{"pages_rewritten": !a.rewriter.IsAsset(r.URL.Path)}
}

// Run serves every configured listener until ctx is cancelled
func (a *theApp) Run(ctx context.Context) error {
	handler, err := a.buildHandler()
	if err != nil {
		return err
	}

	listeners, err := a.listen(ctx, handler)
	if err != nil {
		return err
	}

	return a.serve(ctx, listeners)
}
