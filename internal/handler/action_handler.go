package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"notedeck/internal/domain"
	"notedeck/internal/service"
	"notedeck/pkg/response"
)

type ActionHandler struct {
	service *service.ActionService
}

func NewActionHandler(service *service.ActionService) *ActionHandler {
	return &ActionHandler{service: service}
}

// Generate derives action items for a note draft. The configuration check
// runs before the input check, so a missing credential reports 500 even for
// an empty request.
func (h *ActionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateActionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	actions, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompletionNotConfigured):
			response.InternalError(w, err.Error())
		case errors.Is(err, service.ErrNothingToGenerate):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, err.Error())
		}
		return
	}

	response.Actions(w, actions)
}
