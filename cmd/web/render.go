package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"sgwebsitebuilder.com/web/internal/handlers"
	"sgwebsitebuilder.com/web/internal/observability"
	"sgwebsitebuilder.com/web/templates"
)

// templateSet holds the shared layouts and partials plus one clone per page,
// each adding that page's "content" block.
type templateSet struct {
	shared *template.Template
	pages  map[string]*template.Template
}

// renderer executes templates from the embedded set, or reparses them from
// disk on every call in dev mode.
type renderer struct {
	dev   bool
	disk  fs.FS
	cache *templateSet
}

func newRenderer(dev bool, dir string) (*renderer, error) {
	rn := &renderer{dev: dev}
	if dev {
		rn.disk = os.DirFS(dir)
		// Fail fast on a broken tree even in dev mode.
		if _, err := parseTemplates(rn.disk); err != nil {
			return nil, err
		}
		return rn, nil
	}
	set, err := parseTemplates(templates.FS)
	if err != nil {
		return nil, err
	}
	rn.cache = set
	return rn, nil
}

var funcMap = template.FuncMap{
	"dict": dict,
	"css":  func(s string) template.CSS { return template.CSS(s) },
	"unavailable": func(href, label string) handlers.UnavailableView {
		return handlers.Unavailable(handlers.Link{Href: href, Label: label})
	},
}

func parseTemplates(fsys fs.FS) (*templateSet, error) {
	shared, err := template.New("_root").Funcs(funcMap).ParseFS(fsys, "layouts/*.tmpl", "partials/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}
	files, err := fs.Glob(fsys, "pages/*.tmpl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no page templates found")
	}
	set := &templateSet{shared: shared, pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		clone, err := shared.Clone()
		if err != nil {
			return nil, err
		}
		page, err := clone.ParseFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		set.pages[strings.TrimSuffix(path.Base(file), ".tmpl")] = page
	}
	return set, nil
}

func (rn *renderer) load() (*templateSet, error) {
	if rn.dev {
		return parseTemplates(rn.disk)
	}
	if rn.cache == nil {
		return nil, errors.New("templates not initialised")
	}
	return rn.cache, nil
}

// Page is the full document for page name.
func (rn *renderer) Page(name string, data handlers.PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		set, err := rn.load()
		if err != nil {
			return err
		}
		t, ok := set.pages[name]
		if !ok {
			return fmt.Errorf("unknown page %q", name)
		}
		return t.ExecuteTemplate(w, "base", data)
	})
}

// Fragment is a single partial, as swapped in by htmx.
func (rn *renderer) Fragment(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		set, err := rn.load()
		if err != nil {
			return err
		}
		return set.shared.ExecuteTemplate(w, name, data)
	})
}

// serve writes c with status. Output is buffered, so a template failure still
// produces a clean 500.
func serve(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				observability.FromContext(r.Context()).Error("render failed", zap.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
