package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	cfg "gitlab.com/gitlab-org/pages-spa-rewrite/internal/config"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/logging"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/serving/disk"
	"gitlab.com/gitlab-org/pages-spa-rewrite/metrics"
)

// VERSION stores the information about the semantic version of application
var VERSION = "dev"

// REVISION stores the information about the git revision of application
var REVISION = "HEAD"

func appMain() {
	config, err := cfg.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	if config.General.ShowVersion {
		fmt.Fprintf(os.Stdout, "%s-%s\n", VERSION, REVISION)
		os.Exit(0)
	}

	if err := logging.ConfigureLogging(config.Log.Format, config.Log.Verbose); err != nil {
		log.WithError(err).Fatal("Failed to initialize logging")
	}

	log.WithFields(log.Fields{
		"version":  VERSION,
		"revision": REVISION,
	}).Print("Pages SPA rewrite daemon")

	cfg.LogConfig(config)

	metrics.MustRegister()

	if err := disk.LoadMIMETypes(); err != nil {
		log.WithError(err).Fatal("Failed to load MIME types")
	}

	app, err := newApp(config)
	if err != nil {
		log.WithError(err).Fatal("could not create daemon")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.WithError(err).Fatal("could not start daemon")
	}

	log.Info("daemon stopped")
}

func main() {
	log.SetOutput(os.Stderr)

	appMain()
}
