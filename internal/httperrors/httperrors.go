package httperrors

import (
	"fmt"
	"html"
	"net/http"

	"gitlab.com/gitlab-org/pages-spa-rewrite/internal/logging"
)

type content struct {
	status    int
	title     string
	header    string
	subHeader string
}

var (
	content404 = content{
		status:    http.StatusNotFound,
		title:     "The page you're looking for could not be found (404)",
		header:    "The page you're looking for could not be found.",
		subHeader: `<p>Make sure the address is correct and that the file hasn't moved.</p>`,
	}
	content405 = content{
		status:    http.StatusMethodNotAllowed,
		title:     "Method Not Allowed (405)",
		header:    "Method Not Allowed.",
		subHeader: `<p>The request method is not supported for the requested resource.</p>`,
	}
	content414 = content{
		status: http.StatusRequestURITooLong,
		title:  "Request URI Too Long (414)",
		header: "Request URI Too Long.",
		subHeader: `<p>The URI provided was too long for the server to process.</p>
    <p>Try to make the request URI shorter.</p>`,
	}
	content500 = content{
		status:    http.StatusInternalServerError,
		title:     "Something went wrong (500)",
		header:    "Whoops, something went wrong on our end.",
		subHeader: `<p>Try refreshing the page, or going back and attempting the action again.</p>`,
	}
)

const predefinedErrorPage = `<!DOCTYPE html>
<html>
<head>
  <meta content="width=device-width, initial-scale=1, maximum-scale=1" name="viewport">
  <title>%s</title>
  <style>
    body { color: #666; text-align: center; font-family: "Helvetica Neue", Helvetica, Arial, sans-serif; margin: auto; font-size: 14px; }
    h1 { font-size: 56px; line-height: 100px; font-weight: 400; color: #456; }
    h3 { color: #456; font-size: 20px; font-weight: 400; line-height: 28px; }
    hr { max-width: 800px; margin: 18px auto; border: 0; border-top: 1px solid #EEE; }
  </style>
</head>
<body>
  <h1>%d</h1>
  <div class="container">
    <h3>%s</h3>
    <hr />
    %s
  </div>
</body>
</html>
`

func generateErrorHTML(c content) string {
	return fmt.Sprintf(predefinedErrorPage, html.EscapeString(c.title), c.status, html.EscapeString(c.header), c.subHeader)
}

func serveErrorPage(w http.ResponseWriter, c content) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(c.status)
	fmt.Fprintln(w, generateErrorHTML(c))
}

// Serve404 returns a 404 error response / HTML page to the http.ResponseWriter
func Serve404(w http.ResponseWriter) {
	serveErrorPage(w, content404)
}

// Serve405 returns a 405 error response / HTML page to the http.ResponseWriter
func Serve405(w http.ResponseWriter) {
	serveErrorPage(w, content405)
}

// Serve414 returns a 414 error response / HTML page to the http.ResponseWriter
func Serve414(w http.ResponseWriter) {
	serveErrorPage(w, content414)
}

// Serve500 returns a 500 error response / HTML page to the http.ResponseWriter
func Serve500(w http.ResponseWriter) {
	serveErrorPage(w, content500)
}

// Serve500WithRequest logs err against the request and returns a 500 error
// response / HTML page to the http.ResponseWriter
func Serve500WithRequest(w http.ResponseWriter, r *http.Request, reason string, err error) {
	logging.LogRequest(r).WithError(err).Error(reason)
	serveErrorPage(w, content500)
}
