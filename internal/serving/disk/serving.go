package disk

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/httperrors"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/logging"
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/serving/fileresolver"
	"gitlab.com/gitlab-org/pages-spa-rewrite/metrics"
)

// Disk serves a static site from a directory
type Disk struct {
	reader Reader
}

// New returns a Disk serving files below root
func New(root string) (*Disk, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	// On some systems the root itself is reached through a symlink
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolving site root: %w", err)
	}

	return &Disk{
		reader: Reader{
			resolver:       fileresolver.Resolver{Root: resolved},
			fileSizeMetric: metrics.DiskServingFileSize,
		},
	}, nil
}

// ServeHTTP serves the file named by the request path. Directories without a
// trailing slash are redirected, missing files get the site's 404.html or
// the generic 404 page.
func (s *Disk) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := s.reader.tryFile(w, r)
	switch {
	case err == nil:
		return
	case errors.Is(err, fileresolver.ErrIsDirectory):
		http.Redirect(w, r, redirectPath(r), http.StatusFound)
		return
	case !fileresolver.IsNotFound(err):
		httperrors.Serve500WithRequest(w, r, "failed to serve file", err)
		return
	}

	s.ServeNotFoundHTTP(w, r)
}

// ServeNotFoundHTTP tries to read a custom 404 page
func (s *Disk) ServeNotFoundHTTP(w http.ResponseWriter, r *http.Request) {
	err := s.reader.tryNotFound(w, r)
	if err == nil {
		return
	}

	if !fileresolver.IsNotFound(err) {
		logging.LogRequest(r).WithError(err).Warn("failed to serve custom 404 page")
	}

	// Generic 404
	httperrors.Serve404(w)
}

// CheckObject returns an error unless urlPath resolves to a regular file
func (s *Disk) CheckObject(urlPath string) error {
	if _, err := s.reader.resolver.Resolve(urlPath); err != nil {
		return fmt.Errorf("%s: %w", urlPath, err)
	}

	return nil
}
