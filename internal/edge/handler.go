package edge

import (
	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/rewrite"
)

// Handle is the viewer-request function. It rewrites the uri of the event's
// request in place and returns that request, leaving every other field as
// received.
func Handle(rw *rewrite.Rewriter, event *Event) *Request {
	req := event.Request
	req.URI = rw.RewriteURI(req.URI)

	return req
}
