// Package assets serves the embedded static UI for chatwithproperties.
// The set of logical names is closed; everything is compiled into the binary
// via go:embed so the deployable is a single file.
package assets

import (
	"embed"
	"path"

	"github.com/samber/lo"
)

//go:embed static
var staticFS embed.FS

// NotFoundBody is the sentinel content returned for unknown logical names.
// The original served this with a 200 status rather than a 404; that behavior
// is preserved for compatibility.
const NotFoundBody = "File not found"

// Logical asset names.
const (
	HomePage   = "index.html"
	LoginPage  = "login.html"
	Stylesheet = "styles.css"
	Script     = "app.js"
)

var known = []string{HomePage, LoginPage, Stylesheet, Script}

// Resolve maps a logical filename to its embedded content and content type.
// Unknown names yield the NotFoundBody sentinel with a text/plain type; the
// second return reports whether the name was known.
func Resolve(name string) (content []byte, contentType string, ok bool) {
	if !lo.Contains(known, name) {
		return []byte(NotFoundBody), "text/plain", false
	}

	data, err := staticFS.ReadFile("static/" + name)
	if err != nil {
		// Embedded files cannot go missing at runtime; treat like unknown
		return []byte(NotFoundBody), "text/plain", false
	}

	return data, ContentType(name), true
}

// Names returns the closed set of logical asset names.
func Names() []string {
	return lo.Map(known, func(n string, _ int) string { return n })
}

// ContentType derives a MIME type from the file extension.
func ContentType(name string) string {
	switch path.Ext(name) {
	case ".html":
		return "text/html"
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	default:
		return "text/plain"
	}
}
