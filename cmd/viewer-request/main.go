package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// VERSION stores the information about the semantic version of application
var VERSION = "dev"

// REVISION stores the information about the git revision of application
var REVISION = "HEAD"

var errUsage = errors.New("usage: viewer-request <render|handle|classify|version> [flags]")

type command func(args []string, stdin io.Reader, stdout io.Writer) error

var commands = map[string]command{
	"render":   runRender,
	"handle":   runHandle,
	"classify": runClassify,
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	if args[0] == "version" {
		_, err := fmt.Fprintf(stdout, "%s-%s\n", VERSION, REVISION)
		return err
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}

	return cmd(args[1:], stdin, stdout)
}

func main() {
	log.SetOutput(os.Stderr)

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Fatal("viewer-request failed")
	}
}
