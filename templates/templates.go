// Package templates holds the server-rendered pages of the dashboard.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"money": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"isImageURL": func(s string) bool {
		return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "data:image/")
	},
}

// Load parses every page. Pages are executed by file name, e.g. "booked.html".
func Load() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	return tmpl, nil
}
