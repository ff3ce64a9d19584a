package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONWritesBodyAndHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusCreated, map[string]string{"status": "ok"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type: %s", ct)
	}
	var payload map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["status"] != "ok" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestErrorOmitsDetails(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusNotFound, "not_found")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"error":"not_found"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestJSONErrorCarriesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"name": "required"})
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "validation_failed" {
		t.Fatalf("unexpected error code: %s", resp.Error)
	}
	details, ok := resp.Details.(map[string]any)
	if !ok || details["name"] != "required" {
		t.Fatalf("unexpected details: %v", resp.Details)
	}
}
