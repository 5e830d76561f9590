package handler

import (
	"log"
	"net/http"
	"time"

	"notedeck/internal/config"
	"notedeck/internal/service"
	"notedeck/internal/web"
	"notedeck/pkg/response"
)

// PageHandler serves the server-rendered pages and static assets.
type PageHandler struct {
	notes    *service.NoteService
	renderer *web.Renderer
	cfg      *config.Config
}

func NewPageHandler(notes *service.NoteService, renderer *web.Renderer, cfg *config.Config) *PageHandler {
	return &PageHandler{
		notes:    notes,
		renderer: renderer,
		cfg:      cfg,
	}
}

// NotesPage renders the full notes interface. Store failures surface as the
// JSON error envelope, matching the API endpoints.
func (h *PageHandler) NotesPage(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context())
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.NotesPage(w, notes); err != nil {
		log.Printf("Failed to render notes page: %v", err)
	}
}

func (h *PageHandler) CalendarPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.CalendarPage(w); err != nil {
		log.Printf("Failed to render calendar page: %v", err)
	}
}

func (h *PageHandler) Styles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css")
	w.Write(web.Styles())
}

func (h *PageHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/api/notes", http.StatusFound)
}

// Health reports liveness plus which settings are present, without leaking
// their values.
func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.WriteRaw(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"env": map[string]bool{
			"hasSupabaseUrl": h.cfg.Store.URL != "",
			"hasSupabaseKey": h.cfg.Store.AnonKey != "",
			"hasOpenAIKey":   h.cfg.Completion.APIKey != "",
			"hasWebhookUrl":  h.cfg.Webhook.URL != "",
		},
	})
}
