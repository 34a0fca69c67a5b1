package main

import (
	"fmt"
	"io"
	"os"

	"github.com/namsral/flag"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/edge"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/rewrite"
)

type rewriteFlags struct {
	rootObject  *string
	assetPolicy *string
}

func newFlagSet(name string, stdout io.Writer) (*flag.FlagSet, rewriteFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stdout)

	return fs, rewriteFlags{
		rootObject:  fs.String("root-object", "index.html", "The object every non-asset request is rewritten to"),
		assetPolicy: fs.String("asset-policy", rewrite.DefaultPolicy.String(), fmt.Sprintf("How asset paths are recognised, supported values are %s", rewrite.PolicyNames())),
	}
}

func (f rewriteFlags) policy() (rewrite.Policy, error) {
	return rewrite.ParsePolicy(*f.assetPolicy)
}

func (f rewriteFlags) rewriter() (*rewrite.Rewriter, error) {
	policy, err := f.policy()
	if err != nil {
		return nil, err
	}

	return rewrite.New(*f.rootObject, policy)
}

// runRender writes the deployable viewer-request function
func runRender(args []string, _ io.Reader, stdout io.Writer) error {
	fs, rf := newFlagSet("render", stdout)
	output := fs.String("o", "", "Write the function to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	policy, err := rf.policy()
	if err != nil {
		return err
	}

	opts := edge.RenderOptions{RootObject: *rf.rootObject, Policy: policy}

	if *output == "" {
		return edge.Render(stdout, opts)
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}

	if err := edge.Render(f, opts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// runHandle applies the function to an event read from stdin and prints the
// resulting request
func runHandle(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, rf := newFlagSet("handle", stdout)

	if err := fs.Parse(args); err != nil {
		return err
	}

	rw, err := rf.rewriter()
	if err != nil {
		return err
	}

	event, err := edge.DecodeEvent(stdin)
	if err != nil {
		return err
	}

	return edge.EncodeRequest(stdout, edge.Handle(rw, event))
}

// runClassify prints, for every path argument, where the function sends it
func runClassify(args []string, _ io.Reader, stdout io.Writer) error {
	fs, rf := newFlagSet("classify", stdout)

	if err := fs.Parse(args); err != nil {
		return err
	}

	rw, err := rf.rewriter()
	if err != nil {
		return err
	}

	for _, uri := range fs.Args() {
		outcome := "rewrite"
		if rw.IsAsset(uri) {
			outcome = "asset"
		}

		if _, err := fmt.Fprintf(stdout, "%s\t%s\t%s\n", uri, outcome, rw.RewriteURI(uri)); err != nil {
			return err
		}
	}

	return nil
}
