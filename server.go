package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	ghandlers "github.com/gorilla/handlers"
	proxyproto "github.com/pires/go-proxyproto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/netutil"
	"gitlab.com/gitlab-org/pages-spa-rewrite/metrics"
)

type listenerType string

const (
	listenerHTTP    listenerType = "http"
	listenerProxy   listenerType = "proxy"
	listenerProxyv2 listenerType = "proxyv2"
	listenerMetrics listenerType = "metrics"
)

type listenerConfig struct {
	kind     listenerType
	listener net.Listener
	handler  http.Handler
}

// listen opens every configured listener, closing the ones already opened
// when one fails
func (a *theApp) listen(ctx context.Context, handler http.Handler) (listeners []listenerConfig, err error) {
	defer func() {
		if err != nil {
			for _, l := range listeners {
				l.listener.Close()
			}
		}
	}()

	var limiter *netutil.Limiter
	if a.config.General.MaxConns > 0 {
		limiter = netutil.NewLimiterWithMetrics(
			a.config.General.MaxConns,
			metrics.LimitListenerMaxConns,
			metrics.LimitListenerConcurrentConns,
			metrics.LimitListenerWaitingConns,
		)
	}

	lc := net.ListenConfig{KeepAlive: a.config.Server.ListenKeepAlive}

	for _, group := range []struct {
		kind      listenerType
		addresses []string
		handler   http.Handler
	}{
		{listenerHTTP, a.config.Listeners.HTTP, handler},
		{listenerProxy, a.config.Listeners.Proxy, ghandlers.ProxyHeaders(handler)},
		{listenerProxyv2, a.config.Listeners.Proxyv2, handler},
	} {
		for _, addr := range group.addresses {
			l, err := lc.Listen(ctx, "tcp", addr)
			if err != nil {
				return listeners, fmt.Errorf("failed to listen on %s address %s: %w", group.kind, addr, err)
			}

			if limiter != nil {
				l = netutil.SharedLimitListener(l, limiter)
			}

			if group.kind == listenerProxyv2 {
				l = &proxyproto.Listener{
					Listener: l,
					Policy: func(upstream net.Addr) (proxyproto.Policy, error) {
						return proxyproto.REQUIRE, nil
					},
				}
			}

			listeners = append(listeners, listenerConfig{kind: group.kind, listener: l, handler: group.handler})
		}
	}

	if a.config.General.MetricsAddress != "" {
		l, err := lc.Listen(ctx, "tcp", a.config.General.MetricsAddress)
		if err != nil {
			return listeners, fmt.Errorf("failed to listen on metrics address %s: %w", a.config.General.MetricsAddress, err)
		}

		listeners = append(listeners, listenerConfig{kind: listenerMetrics, listener: l, handler: promhttp.Handler()})
	}

	return listeners, nil
}

func (a *theApp) newServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       a.config.Server.ReadTimeout,
		ReadHeaderTimeout: a.config.Server.ReadHeaderTimeout,
		WriteTimeout:      a.config.Server.WriteTimeout,
	}
}

// serve runs a server per listener and shuts them all down once ctx is done
// or one of them fails
func (a *theApp) serve(ctx context.Context, listeners []listenerConfig) error {
	g, ctx := errgroup.WithContext(ctx)

	servers := make([]*http.Server, 0, len(listeners))
	for _, lc := range listeners {
		lc := lc
		server := a.newServer(lc.handler)
		servers = append(servers, server)

		log.WithFields(log.Fields{
			"listener": lc.kind,
			"address":  lc.listener.Addr().String(),
		}).Info("started listener")

		g.Go(func() error {
			if err := server.Serve(lc.listener); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving %s listener: %w", lc.kind, err)
			}

			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()

		var result error
		for _, server := range servers {
			if err := server.Shutdown(shutdownCtx); err != nil && result == nil {
				result = fmt.Errorf("shutting down server: %w", err)
			}
		}

		return result
	})

	return g.Wait()
}
