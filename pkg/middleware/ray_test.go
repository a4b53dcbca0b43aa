package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRayGeneratesIdentifier(t *testing.T) {
	var fromCtx string
	handler := Ray()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RayFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/classify", nil))

	if fromCtx == "" {
		t.Fatal("context ray is empty")
	}
	if got := rec.Header().Get(RayHeader); got != fromCtx {
		t.Fatalf("response header = %q, want context value %q", got, fromCtx)
	}
}

func TestRayEchoesCallerIdentifier(t *testing.T) {
	var fromCtx string
	handler := Ray()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RayFromContext(r.Context())
	}))

	req := httptest.NewRequest("POST", "/classify", nil)
	req.Header.Set(RayHeader, "caller-ray")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if fromCtx != "caller-ray" {
		t.Fatalf("context ray = %q, want caller-ray", fromCtx)
	}
	if got := rec.Header().Get(RayHeader); got != "caller-ray" {
		t.Fatalf("response header = %q, want caller-ray", got)
	}
}

func TestRayFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := RayFromContext(req.Context()); got != "" {
		t.Fatalf("RayFromContext() = %q, want empty without middleware", got)
	}
}
