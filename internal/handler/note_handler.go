package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"notedeck/internal/domain"
	"notedeck/internal/repository"
	"notedeck/internal/service"
	"notedeck/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type NoteHandler struct {
	service  *service.NoteService
	validate *validator.Validate
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{
		service:  service,
		validate: validator.New(),
	}
}

// ListJSON returns the full collection, newest first, optionally narrowed by
// the q query parameter. The notes page consumes this for edit-form refreshes.
func (h *NoteHandler) ListJSON(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	notes, err := h.service.Search(r.Context(), query)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.Data(w, notes)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	note, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}

	response.Data(w, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]

	var req domain.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				if fe.Field() == "Title" && fe.Tag() == "required" {
					response.BadRequest(w, service.ErrEmptyTitle.Error())
					return
				}
			}
		}
		response.BadRequest(w, err.Error())
		return
	}

	note, err := h.service.Update(r.Context(), noteID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.DataWithMessage(w, "Note updated successfully", note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]

	note, err := h.service.Delete(r.Context(), noteID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.DataWithMessage(w, "Note deleted successfully", note)
}

// StoreTest probes store connectivity for diagnostics.
func (h *NoteHandler) StoreTest(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ping(r.Context()); err != nil {
		response.WriteRaw(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
			"message": "Database connection failed. Please check your store configuration.",
		})
		return
	}

	response.WriteRaw(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Database connection successful!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *NoteHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(w, "Note not found")
	case errors.Is(err, service.ErrEmptyTitle):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, err.Error())
	}
}
