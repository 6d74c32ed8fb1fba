// Package render serves HTML views with named substitutions.
package render

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"
)

// ViewData holds the substitution values available to every view.
// Absent values render as empty strings.
type ViewData struct {
	Message  string
	UserID   string
	Username string
}

// Renderer loads views from a directory and executes them per request,
// so edits to a view take effect without a restart.
type Renderer struct {
	dir string
}

func New(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render writes the named view to w with the given substitutions.
// A missing view file is reported through os.IsNotExist on the returned
// error.
func (r *Renderer) Render(w http.ResponseWriter, name string, data ViewData) error {
	content, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		return err
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.Execute(w, data)
}
