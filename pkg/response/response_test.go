package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	return body
}

func TestDataEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Data(rec, map[string]string{"k": "v"})

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["success"] != true {
		t.Error("expected success true")
	}
	if _, ok := body["error"]; ok {
		t.Error("success envelope must omit the error field")
	}
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Note not found")

	if rec.Code != 404 {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decode(t, rec)
	if body["success"] != false || body["error"] != "Note not found" {
		t.Errorf("unexpected envelope %v", body)
	}
}

func TestActionsEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Actions(rec, "• Sam - Task")

	body := decode(t, rec)
	if body["actions"] != "• Sam - Task" {
		t.Errorf("expected top-level actions field, got %v", body)
	}
	if _, ok := body["data"]; ok {
		t.Error("actions envelope must omit the data field")
	}
}
