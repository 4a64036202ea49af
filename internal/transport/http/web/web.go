// Package web renders the server-side HTML pages. Templates and static
// assets are embedded in the binary.
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"hrpulse/internal/domain/forms"
	"hrpulse/internal/domain/navigation"
	"hrpulse/internal/domain/notifications"
	"hrpulse/internal/transport/http/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Flash is a one-off confirmation rendered above the page content.
type Flash struct {
	Title       string
	Description string
}

// Option is one entry of a filter select.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Page is the data every template receives.
type Page struct {
	Title         string
	Path          string
	Sidebar       []navigation.Link
	Unread        int
	Notifications []notifications.Notification
	Flash         *Flash
	RequestID     string
	Content       any
}

// NotificationSource feeds the header bell.
type NotificationSource interface {
	List(ctx context.Context, limit, offset int) ([]notifications.Notification, error)
	Unread(ctx context.Context) int
}

type Renderer struct {
	pages         map[string]*template.Template
	notifications NotificationSource
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
	"longDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"dateValue": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"join": strings.Join,
	"add":  func(a, b int) int { return a + b },
	"issues": func(err any, field string) []string {
		issues, ok := err.(forms.Issues)
		if !ok {
			return nil
		}
		return issues.For(field)
	},
	"initials": func(name string) string {
		var out []rune
		for _, part := range strings.Fields(name) {
			out = append(out, []rune(part)[0])
			if len(out) == 2 {
				break
			}
		}
		return strings.ToUpper(string(out))
	},
}

// New parses the layout once per page template.
func New(source NotificationSource) (*Renderer, error) {
	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template), notifications: source}
	for _, name := range names {
		base := path.Base(name)
		if base == "layout.html" || base == "partials.html" {
			continue
		}
		clone, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		page, err := clone.ParseFS(templateFS, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", base, err)
		}
		r.pages[strings.TrimSuffix(base, ".html")] = page
	}
	return r, nil
}

// Render executes the named page into a buffer before writing, so a
// template failure never leaves a half written response.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, content any, flash *Flash) {
	tmpl, ok := r.pages[name]
	if !ok {
		slog.Error("unknown page template", "page", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data := r.page(req, content, flash)
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		slog.Error("render page failed", "page", name, "err", err, "requestId", data.RequestID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("write page failed", "page", name, "err", err)
	}
}

// NotFound renders the fail-closed state for unknown ids and routes.
func (r *Renderer) NotFound(w http.ResponseWriter, req *http.Request, message string) {
	r.Render(w, req, http.StatusNotFound, "not_found", map[string]string{"Message": message}, nil)
}

// Error logs err and renders a generic failure page.
func (r *Renderer) Error(w http.ResponseWriter, req *http.Request, err error) {
	slog.Error("page handler failed", "path", req.URL.Path, "err", err, "requestId", middleware.GetRequestID(req.Context()))
	r.Render(w, req, http.StatusInternalServerError, "error", nil, nil)
}

func (r *Renderer) page(req *http.Request, content any, flash *Flash) Page {
	p := Page{
		Title:     navigation.Title(req.URL.Path),
		Path:      req.URL.Path,
		Sidebar:   navigation.Sidebar(req.URL.Path),
		Flash:     flash,
		RequestID: middleware.GetRequestID(req.Context()),
		Content:   content,
	}
	if r.notifications != nil {
		p.Unread = r.notifications.Unread(req.Context())
		items, err := r.notifications.List(req.Context(), notifications.DefaultLimit, 0)
		if err != nil {
			slog.Warn("notification list failed", "err", err)
		}
		p.Notifications = items
	}
	return p
}

// Static serves the embedded stylesheet and icons.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
