package disk

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"gitlab.com/gitlab-org/go-mimedb"
	"golang.org/x/sys/unix"
)

var extraMIMETypes = map[string]string{
	".avif":        "image/avif",
	".webmanifest": "application/manifest+json",
}

// LoadMIMETypes registers the mimedb types and the extra types used by
// single page applications with the mime package
func LoadMIMETypes() error {
	if err := mimedb.LoadTypes(); err != nil {
		return err
	}

	for ext, mimeType := range extraMIMETypes {
		if err := mime.AddExtensionType(ext, mimeType); err != nil {
			return err
		}
	}

	return nil
}

func openNoFollow(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDONLY|unix.O_NOFOLLOW, 0)
}

// Detect file's content-type either by extension or mime-sniffing.
// Implementation is adapted from Golang's `http.serveContent()`
// See https://github.com/golang/go/blob/902fc114272978a40d2e65c2510a18e870077559/src/net/http/fs.go#L194
func detectContentType(file io.ReadSeeker, path string) (string, error) {
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType != "" {
		return contentType, nil
	}

	var buf [512]byte

	// Using `io.ReadFull()` because `file.Read()` may be chunked.
	// Ignoring errors because we don't care if the 512 bytes cannot be read.
	n, _ := io.ReadFull(file, buf[:])
	contentType = http.DetectContentType(buf[:n])

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return contentType, nil
}

func redirectPath(r *http.Request) string {
	u := *r.URL
	u.Scheme = ""
	u.Host = ""
	u.User = nil
	u.Path += "/"
	u.RawPath = ""

	return u.String()
}
