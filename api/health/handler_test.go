package health

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	h := NewHandler()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	want := `{"status":"healthy","service":"Task Planner API","version":"1.0.0"}` + "\n"
	if rr.Body.String() != want {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type %q", ct)
	}
}

func TestHealthHandlerMethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHandler().ServeHTTP(rr, httptest.NewRequest("DELETE", "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rr.Code)
	}
}
