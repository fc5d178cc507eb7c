package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrTemplate marks failures that happened before anything was written, so
// the caller can still send an error response.
var ErrTemplate = errors.New("template execution failed")

// Renderer executes the embedded templates. It is safe for concurrent use.
type Renderer struct {
	fragments *template.Template
	pages     map[Template]*template.Template
}

// NewRenderer parses the templates once. mediaURL is prepended to image paths
// by the "media" template function.
func NewRenderer(mediaURL string) (*Renderer, error) {
	funcs := template.FuncMap{
		"media": mediaFunc(mediaURL),
	}

	fragments, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	pages := make(map[Template]*template.Template, len(Fragments))
	for _, fragment := range Fragments {
		if fragments.Lookup(string(fragment)) == nil {
			return nil, fmt.Errorf("template %q is not defined", fragment)
		}
		page, err := fragments.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone templates: %w", err)
		}
		content := fmt.Sprintf(`{{define "content"}}{{template %q .}}{{end}}`, fragment)
		if _, err := page.Parse(content); err != nil {
			return nil, fmt.Errorf("page %q: %w", fragment, err)
		}
		pages[fragment] = page
	}

	return &Renderer{fragments: fragments, pages: pages}, nil
}

// Render writes tmpl with data. When tmpl is Page, content selects the
// fragment embedded in the layout. Nothing is written if execution fails.
func (v *Renderer) Render(w http.ResponseWriter, status int, tmpl, content Template, data any) error {
	var buf bytes.Buffer

	if tmpl == Page {
		page, ok := v.pages[content]
		if !ok {
			return fmt.Errorf("%w: no page for content %q", ErrTemplate, content)
		}
		if err := page.ExecuteTemplate(&buf, string(Page), data); err != nil {
			return fmt.Errorf("%w: page %q: %v", ErrTemplate, content, err)
		}
	} else {
		if err := v.fragments.ExecuteTemplate(&buf, string(tmpl), data); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrTemplate, tmpl, err)
		}
	}

	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Add("Vary", PartialHeader)
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func mediaFunc(base string) func(string) string {
	return func(path string) string {
		if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
			return path
		}
		if base == "" {
			return path
		}
		return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
	}
}
