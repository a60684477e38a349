package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every page template. Each page defines its own content block
// on top of the shared "layout" template.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
