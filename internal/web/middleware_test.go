package web

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mlb-companion/internal/metrics"
)

func TestLoggingMiddlewareSetsRequestIDAndRecordsMetrics(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
	rr := httptest.NewRecorder()

	LoggingMiddleware(logger, rec, next).ServeHTTP(rr, req)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header on the response")
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("log output = %q", buf.String())
	}
}

func TestLoggingMiddlewarePreservesValidRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got != "client-supplied-1" {
			t.Fatalf("request id = %q", got)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied-1")
	rr := httptest.NewRecorder()

	LoggingMiddleware(nil, nil, next).ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "client-supplied-1" {
		t.Fatalf("response request id = %q", got)
	}
}

func TestRequestIDSanitization(t *testing.T) {
	if sanitizeRequestID("valid-123") != "valid-123" {
		t.Fatalf("expected valid id to pass through")
	}
	for _, raw := range []string{"", "bad id", "too" + strings.Repeat("o", 80) + "long", "inj\nected"} {
		sanitized := sanitizeRequestID(raw)
		if sanitized == raw || sanitized == "" {
			t.Fatalf("sanitizeRequestID(%q) = %q", raw, sanitized)
		}
	}
}

func TestRequestIDHelpers(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}

	ctx := withRequestID(context.Background(), "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
}

func TestResponseWriterCapturesStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ww := &responseWriter{ResponseWriter: rr, status: http.StatusOK}

	ww.WriteHeader(http.StatusNotFound)

	if ww.status != http.StatusNotFound {
		t.Fatalf("captured status = %d", ww.status)
	}
	if rr.Code != http.StatusNotFound {
		t.Fatalf("underlying status = %d", rr.Code)
	}
}
