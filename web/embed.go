// Package web embeds the HTML templates and static assets served by the site.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html static
var files embed.FS

// Templates parses every page and partial with funcs available to all of them.
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err) // static/ is embedded above
	}
	return sub
}
