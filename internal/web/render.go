// Package web renders the server-generated pages. All user-supplied text
// passes through html/template's contextual escaping, both in markup and in
// the note collection embedded for the client-side search.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"notedeck/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static/styles.css
var stylesCSS []byte

type Renderer struct {
	templates  *template.Template
	webhookURL string
}

func NewRenderer(webhookURL string) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"formatDate": formatDate,
		"preview":    preview,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		templates:  tmpl,
		webhookURL: webhookURL,
	}, nil
}

type notesPageData struct {
	Notes []*domain.Note
}

type calendarPageData struct {
	WebhookURL string
}

// NotesPage renders the sidebar/detail interface with the full collection
// embedded as data for the in-browser search.
func (r *Renderer) NotesPage(w io.Writer, notes []*domain.Note) error {
	if notes == nil {
		notes = []*domain.Note{}
	}
	return r.templates.ExecuteTemplate(w, "notes.html.tmpl", notesPageData{Notes: notes})
}

// CalendarPage renders the client-only calendar. The webhook URL from the
// environment is handed to the page script; events themselves never touch
// the server.
func (r *Renderer) CalendarPage(w io.Writer) error {
	return r.templates.ExecuteTemplate(w, "calendar.html.tmpl", calendarPageData{WebhookURL: r.webhookURL})
}

// Styles returns the embedded stylesheet shared by both pages.
func Styles() []byte {
	return stylesCSS
}

func formatDate(v any) string {
	var t time.Time
	switch ts := v.(type) {
	case time.Time:
		t = ts
	case *time.Time:
		if ts == nil {
			return "—"
		}
		t = *ts
	default:
		return "—"
	}
	if t.IsZero() {
		return "—"
	}
	return t.Format("1/2/2006 3:04 PM")
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= 80 {
		return content
	}
	return string(runes[:80]) + "..."
}
