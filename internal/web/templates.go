package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"time"

	"mlb-companion/internal/logging"
	"mlb-companion/internal/timeutil"
)

//go:embed templates
var templateFS embed.FS

// TemplateCache maps page names to their parsed template sets.
type TemplateCache map[string]*template.Template

var templateFuncs = template.FuncMap{
	"clock": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return timeutil.FormatClock(t)
	},
	"rfc3339": func(t time.Time) string {
		return t.Format(time.RFC3339)
	},
}

// NewTemplateCache parses every page template against the base layout.
func NewTemplateCache() (TemplateCache, error) {
	cache := make(TemplateCache)

	pages, err := fs.Glob(templateFS, "templates/pages/*.tmpl")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)
		ts, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/base.tmpl", page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		cache[name] = ts
	}

	return cache, nil
}

// render executes a page into a buffer first so a template failure
// surfaces as a 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	ts, ok := h.templates[page]
	if !ok {
		logging.Error(logging.FromContext(r.Context(), h.logger), "template missing", nil, "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := ts.ExecuteTemplate(&buf, "base", data); err != nil {
		logging.Error(logging.FromContext(r.Context(), h.logger), "template render failed", err, "page", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
