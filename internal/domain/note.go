package domain

import (
	"strings"
	"time"
)

// DefaultTitle is stored whenever a note is created without one. Create is
// deliberately lenient here while Update rejects empty titles outright; the
// two policies differ on purpose (quick capture vs. deliberate edit).
const DefaultTitle = "Untitled Note"

type Note struct {
	ID          string     `json:"note_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Actions     string     `json:"actions"`
	DateCreated time.Time  `json:"date_created"`
	LastUpdate  *time.Time `json:"last_update"`
}

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"omitempty,max=100"`
	Content string `json:"content" validate:"omitempty,max=5000"`
	Actions string `json:"actions" validate:"omitempty,max=500"`
}

type UpdateNoteRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"omitempty,max=5000"`
	Actions string `json:"actions" validate:"omitempty,max=500"`
}

type GenerateActionsRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteFields is the writable column set sent to the record store. ID and
// DateCreated are store-assigned and never appear here.
type NoteFields struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Actions    string     `json:"actions"`
	LastUpdate *time.Time `json:"last_update,omitempty"`
}

// Matches reports whether the note contains the query, case-insensitively,
// in its title, content or actions. It is the server-side twin of the search
// filter the notes page runs in the browser.
func (n *Note) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q) ||
		strings.Contains(strings.ToLower(n.Actions), q)
}

// FilterNotes returns the notes matching query, preserving order.
func FilterNotes(notes []*Note, query string) []*Note {
	if strings.TrimSpace(query) == "" {
		return notes
	}
	filtered := make([]*Note, 0, len(notes))
	for _, n := range notes {
		if n.Matches(query) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
