package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSONErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, http.StatusNotFound, "not_found", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(w.Body.String(), `"error":"not_found"`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Username string `json:"username"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"a","nope":1}`))
	if err := Decode(r, &dst); err == nil {
		t.Fatalf("expected unknown field error")
	}
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"a"}`))
	if err := Decode(r, &dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dst.Username != "a" {
		t.Fatalf("expected username decoded, got %q", dst.Username)
	}
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	var dst struct{}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{} {}`))
	if err := Decode(r, &dst); err == nil {
		t.Fatalf("expected trailing data error")
	}
}
