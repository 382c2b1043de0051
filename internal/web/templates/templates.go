// Package templates holds the HTML pages compiled into the binary.
package templates

import (
	"embed"
	"fmt"
	"html/template"

	"job-board/internal/format"
)

//go:embed *.html
var files embed.FS

// Funcs are available to every page.
var Funcs = template.FuncMap{
	"salary":     format.Salary,
	"jobType":    format.JobType,
	"postedDate": format.PostedDate,
	"excerpt":    format.Excerpt,
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

// Parse loads every page; each is addressed by its file name, e.g. "list.html".
func Parse() (*template.Template, error) {
	tmpl, err := template.New("pages").Funcs(Funcs).ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
