// Package views motor de plantillas HTML del panel (implementa fiber.Views).
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"
)

//go:embed templates/*.html
var files embed.FS

const layoutFile = "templates/layout.html"

// Engine cada página se compila junto al layout en su propio conjunto de plantillas.
type Engine struct {
	pages map[string]*template.Template
}

// New construye el motor y compila las plantillas.
func New() (*Engine, error) {
	e := &Engine{}
	if err := e.Load(); err != nil {
		return nil, err
	}
	return e, nil
}

// Load compila todas las páginas embebidas.
func (e *Engine) Load() error {
	base, err := template.New("layout").Funcs(funcs).ParseFS(files, layoutFile)
	if err != nil {
		return fmt.Errorf("views: layout: %w", err)
	}
	names, err := fs.Glob(files, "templates/*.html")
	if err != nil {
		return fmt.Errorf("views: %w", err)
	}
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		if name == layoutFile {
			continue
		}
		t, err := base.Clone()
		if err != nil {
			return fmt.Errorf("views: %s: %w", name, err)
		}
		if _, err := t.ParseFS(files, name); err != nil {
			return fmt.Errorf("views: %s: %w", name, err)
		}
		pages[strings.TrimSuffix(path.Base(name), ".html")] = t
	}
	e.pages = pages
	return nil
}

// Render ejecuta la página name dentro del layout. El argumento de layout de fiber se ignora.
func (e *Engine) Render(w io.Writer, name string, binding interface{}, _ ...string) error {
	t, ok := e.pages[name]
	if !ok {
		return fmt.Errorf("views: la página %q no existe", name)
	}
	return t.ExecuteTemplate(w, "layout", binding)
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	},
}
