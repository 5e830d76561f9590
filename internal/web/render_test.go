package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"notedeck/internal/domain"
)

func renderNotes(t *testing.T, notes []*domain.Note) string {
	t.Helper()
	r, err := NewRenderer("")
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.NotesPage(&buf, notes); err != nil {
		t.Fatalf("failed to render notes page: %v", err)
	}
	return buf.String()
}

func TestNotesPageEscapesTitles(t *testing.T) {
	html := renderNotes(t, []*domain.Note{
		{ID: "n1", Title: "<script>alert('x')</script>", DateCreated: time.Now()},
	})

	if strings.Contains(html, "<script>alert") {
		t.Error("note title must not render as executable markup")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("note title must appear as escaped literal text")
	}
}

func TestNotesPageEmptyState(t *testing.T) {
	html := renderNotes(t, nil)

	if !strings.Contains(html, "No notes yet. Create your first note!") {
		t.Error("expected the empty state message")
	}
	if !strings.Contains(html, "Total Notes: 0") {
		t.Error("expected zero total")
	}
}

func TestNotesPageEmbedsCollection(t *testing.T) {
	html := renderNotes(t, []*domain.Note{
		{ID: "abc-123", Title: "Embedded", Content: "body", DateCreated: time.Now()},
	})

	// The collection is serialized into the page script for client-side search.
	if !strings.Contains(html, "const allNotes =") {
		t.Fatal("expected embedded note data")
	}
	if !strings.Contains(html, "abc-123") {
		t.Error("expected note id in embedded data")
	}
	if !strings.Contains(html, "Total Notes: 1") {
		t.Error("expected total count of 1")
	}
}

func TestCalendarPageEmbedsWebhookURL(t *testing.T) {
	r, err := NewRenderer("https://hooks.example.com/cal")
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	var buf bytes.Buffer
	if err := r.CalendarPage(&buf); err != nil {
		t.Fatalf("failed to render calendar page: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "hooks.example.com") {
		t.Error("expected webhook URL handed to the page script")
	}
	if !strings.Contains(html, "calendarEvents") {
		t.Error("expected the local storage slot name")
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	if got := formatDate(ts); got != "3/5/2024 2:30 PM" {
		t.Errorf("unexpected format %q", got)
	}
	if got := formatDate(&ts); got != "3/5/2024 2:30 PM" {
		t.Errorf("unexpected pointer format %q", got)
	}
	if got := formatDate((*time.Time)(nil)); got != "—" {
		t.Errorf("nil timestamp should render a placeholder, got %q", got)
	}
}

func TestPreview(t *testing.T) {
	if got := preview("short"); got != "short" {
		t.Errorf("short content must pass through, got %q", got)
	}

	long := strings.Repeat("a", 100)
	got := preview(long)
	if !strings.HasSuffix(got, "...") || len([]rune(got)) != 83 {
		t.Errorf("long content must truncate to 80 runes plus ellipsis, got %d runes", len([]rune(got)))
	}
}
