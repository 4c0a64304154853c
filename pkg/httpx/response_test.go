package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/itemregistry/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestJSON_encodesBody(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": "abc"})

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["id"] != "abc" {
		t.Errorf("unexpected body: %v", body)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, http.StatusNotFound, "Item not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["message"] != "Item not found" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if _, ok := body["errors"]; ok {
		t.Errorf("errors should be omitted when empty: %v", body)
	}
	if ts, _ := body["timestamp"].(string); ts == "" {
		t.Errorf("expected timestamp, got %v", body["timestamp"])
	}
}

func TestJSONValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONValidationError(w, "Validation failed", []httpx.FieldError{
		{Field: "name", Message: "Name must not be blank"},
		{Field: "price", Message: "Price must be greater than 0"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body httpx.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Message != "Validation failed" || len(body.Errors) != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Errors[0].Field != "name" || body.Errors[1].Field != "price" {
		t.Errorf("unexpected field order: %+v", body.Errors)
	}
}

func TestCreated(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.Created(w, "/api/items/3", map[string]int{"id": 3})

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/api/items/3" {
		t.Errorf("Location: got %q", loc)
	}
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.NoContent(w)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("registry exploded")
	if got := httpx.SafeError(err, http.StatusInternalServerError, true); got != "Internal Server Error" {
		t.Errorf("production 500: got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusInternalServerError, false); got != "registry exploded" {
		t.Errorf("development 500: got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusBadRequest, true); got != "registry exploded" {
		t.Errorf("production 400: got %q", got)
	}
}
