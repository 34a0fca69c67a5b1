package fileresolver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrIsDirectory is returned when the path names a directory and the
	// request did not end with a slash
	ErrIsDirectory = errors.New("location error accessing directory where file expected")

	errNoExtension        = errors.New("error accessing a path without an extension")
	errFileNotFound       = errors.New("file not found")
	errNotRegularFile     = errors.New("not a regular file")
	errFileNotInPublicDir = errors.New("file found outside of public directory")
)

// DefaultIndex is the object served for directory paths
const DefaultIndex = "index.html"

// Resolver maps request paths to regular files below Root, which must be an
// absolute path with symlinks already resolved
type Resolver struct {
	Root string
	// Index is the file served for paths ending in "/", DefaultIndex if empty
	Index string
	// EvalSymlinks defaults to filepath.EvalSymlinks
	EvalSymlinks func(string) (string, error)
}

// Resolve returns the file urlPath refers to. A path ending in "/" names the
// directory's index, an extensionless path falls back to the same path with
// ".html" appended.
func (r Resolver) Resolve(urlPath string) (string, error) {
	rel := strings.TrimPrefix(urlPath, "/")

	full, err := r.lookup(rel)
	if err == nil {
		return full, nil
	}

	if errors.Is(err, ErrIsDirectory) && strings.HasSuffix(urlPath, "/") {
		return r.lookup(rel + r.index())
	}

	if errors.Is(err, errNoExtension) {
		return r.lookup(strings.TrimSuffix(rel, "/") + ".html")
	}

	return "", err
}

// IsNotFound reports whether err means there is no file to serve
func IsNotFound(err error) bool {
	for _, target := range []error{errFileNotFound, errNoExtension, errNotRegularFile, errFileNotInPublicDir} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func (r Resolver) index() string {
	if r.Index == "" {
		return DefaultIndex
	}

	return r.Index
}

func (r Resolver) evalSymlinks(path string) (string, error) {
	if r.EvalSymlinks == nil {
		return filepath.EvalSymlinks(path)
	}

	return r.EvalSymlinks(path)
}

func (r Resolver) lookup(rel string) (string, error) {
	root := strings.TrimSuffix(r.Root, "/") + "/"

	// Concatenate instead of filepath.Join: the path is resolved exactly as
	// requested, ".." included, and then checked against root.
	candidate := root + rel

	full, err := r.evalSymlinks(candidate)
	if err != nil {
		if !strings.HasSuffix(candidate, ".html") {
			return "", errNoExtension
		}

		return "", errFileNotFound
	}

	if full != filepath.Clean(root) && !strings.HasPrefix(full, root) {
		return "", errFileNotInPublicDir
	}

	fi, err := os.Lstat(full)
	switch {
	case err != nil:
		return "", errFileNotFound
	case fi.IsDir():
		return "", ErrIsDirectory
	case !fi.Mode().IsRegular():
		// devices, sockets and the like are never served
		return "", errNotRegularFile
	}

	return full, nil
}
