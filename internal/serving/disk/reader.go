package disk

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/serving/fileresolver"
)

const notFoundPage = "/404.html"

// Reader is a disk access driver
type Reader struct {
	resolver       fileresolver.Resolver
	fileSizeMetric prometheus.Histogram
}

func (reader *Reader) tryFile(w http.ResponseWriter, r *http.Request) error {
	fullPath, err := reader.resolver.Resolve(r.URL.Path)
	if err != nil {
		return err
	}

	return reader.serve(w, r, fullPath, http.StatusOK)
}

func (reader *Reader) tryNotFound(w http.ResponseWriter, r *http.Request) error {
	fullPath, err := reader.resolver.Resolve(notFoundPage)
	if err != nil {
		return err
	}

	return reader.serve(w, r, fullPath, http.StatusNotFound)
}

// serve writes the file at fullPath. A 200 goes through http.ServeContent for
// conditional and range requests, any other code writes the whole file.
func (reader *Reader) serve(w http.ResponseWriter, r *http.Request, fullPath string, code int) error {
	file, err := openNoFollow(fullPath)
	if err != nil {
		return err
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil {
		return err
	}

	contentType, err := detectContentType(file, fullPath)
	if err != nil {
		return err
	}

	reader.fileSizeMetric.Observe(float64(fi.Size()))
	w.Header().Set("Content-Type", contentType)

	if code == http.StatusOK {
		http.ServeContent(w, r, fullPath, fi.ModTime(), file)
		return nil
	}

	w.Header().Set("Content-Length", strconv.FormatInt(fi.Size(), 10))
	w.WriteHeader(code)

	if r.Method == http.MethodHead {
		return nil
	}

	if _, err := io.CopyN(w, file, fi.Size()); err != nil {
		return fmt.Errorf("writing %s: %w", fullPath, err)
	}

	return nil
}
