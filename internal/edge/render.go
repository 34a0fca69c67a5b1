package edge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/rewrite"
)

//go:embed templates/viewer-request.js.tmpl
var viewerRequestTemplate string

var functionTemplate = template.Must(template.New("viewer-request").Parse(viewerRequestTemplate))

// RenderOptions are the deployment-time parameters of the edge function
type RenderOptions struct {
	RootObject string
	Policy     rewrite.Policy
}

// Render writes the viewer-request function source with the root object and
// the asset pattern baked in.
func Render(w io.Writer, opts RenderOptions) error {
	rw, err := rewrite.New(opts.RootObject, opts.Policy)
	if err != nil {
		return err
	}

	target, err := json.Marshal(rw.Target())
	if err != nil {
		return fmt.Errorf("quoting root object: %w", err)
	}

	return functionTemplate.Execute(w, struct {
		Policy  string
		Pattern string
		Target  string
	}{
		Policy:  rw.Policy().String(),
		Pattern: rw.Policy().Pattern(),
		Target:  string(target),
	})
}
