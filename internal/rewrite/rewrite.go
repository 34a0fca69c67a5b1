package rewrite

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyRootObject is returned when no root object name is given
	ErrEmptyRootObject = errors.New("root object must not be empty")

	// ErrRootObjectNotAsset is returned when the root object itself would be
	// rewritten by the chosen policy, which would make rewriting non-idempotent
	ErrRootObjectNotAsset = errors.New("root object is not classified as an asset")
)

// Request is the part of an incoming request the rewriter works on. URI is
// the request path without the query string.
type Request struct {
	URI string
}

// Rewriter replaces route-like request paths with a fixed root object path.
// It holds no mutable state and is safe for concurrent use.
type Rewriter struct {
	policy Policy
	target string
}

// New returns a Rewriter sending every non-asset path to "/"+rootObject.
// A leading slash on rootObject is ignored.
func New(rootObject string, policy Policy) (*Rewriter, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}

	rootObject = strings.TrimLeft(strings.TrimSpace(rootObject), "/")
	if rootObject == "" {
		return nil, ErrEmptyRootObject
	}

	rw := &Rewriter{
		policy: policy,
		target: "/" + rootObject,
	}

	if !rw.IsAsset(rw.target) {
		return nil, fmt.Errorf("%w: %q with policy %q", ErrRootObjectNotAsset, rootObject, policy)
	}

	return rw, nil
}

// Policy returns the classification policy in use
func (rw *Rewriter) Policy() Policy {
	return rw.policy
}

// Target returns the path route-like requests are rewritten to
func (rw *Rewriter) Target() string {
	return rw.target
}

// IsAsset reports whether uri looks like a request for a static file
func (rw *Rewriter) IsAsset(uri string) bool {
	return rw.policy.match(uri)
}

// RewriteURI returns uri unchanged when it is asset-like and the root object
// path otherwise
func (rw *Rewriter) RewriteURI(uri string) string {
	if rw.IsAsset(uri) {
		return uri
	}

	return rw.target
}

// Rewrite updates r.URI in place and returns r
func (rw *Rewriter) Rewrite(r *Request) *Request {
	r.URI = rw.RewriteURI(r.URI)

	return r
}
