package response

import (
	"encoding/json"
	"net/http"
)

// Response is the uniform envelope every JSON endpoint emits.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Actions string `json:"actions,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Write(w http.ResponseWriter, statusCode int, resp Response) {
	WriteRaw(w, statusCode, resp)
}

// WriteRaw encodes payloads that do not fit the envelope, like /health.
func WriteRaw(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func Data(w http.ResponseWriter, data any) {
	Write(w, http.StatusOK, Response{Success: true, Data: data})
}

func DataWithMessage(w http.ResponseWriter, message string, data any) {
	Write(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func Actions(w http.ResponseWriter, actions string) {
	Write(w, http.StatusOK, Response{Success: true, Actions: actions})
}

func Error(w http.ResponseWriter, statusCode int, err string) {
	Write(w, statusCode, Response{Success: false, Error: err})
}

func BadRequest(w http.ResponseWriter, err string) {
	Error(w, http.StatusBadRequest, err)
}

func NotFound(w http.ResponseWriter, err string) {
	Error(w, http.StatusNotFound, err)
}

func InternalError(w http.ResponseWriter, err string) {
	Error(w, http.StatusInternalServerError, err)
}
