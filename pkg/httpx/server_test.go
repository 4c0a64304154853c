package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/unrolled/secure"

	"github.com/ghuser/itemregistry/pkg/httpx"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// TestSecurityHeaders verifies unrolled/secure sets the expected headers.
func TestSecurityHeaders(t *testing.T) {
	sm := secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		IsDevelopment:         false,
	})
	h := sm.Handler(http.HandlerFunc(okHandler))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	checks := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": "default-src 'self'",
	}
	for header, expected := range checks {
		if got := rr.Header().Get(header); got != expected {
			t.Errorf("%s: got %q, want %q", header, got, expected)
		}
	}
	// HSTS is only set over HTTPS; on plain HTTP unrolled/secure omits it.
}

// TestRequestBodyLimit_WithinLimit verifies requests under the cap pass through.
func TestRequestBodyLimit_WithinLimit(t *testing.T) {
	const limit = 100

	var gotBody []byte
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, limit+1)
		n, _ := r.Body.Read(buf)
		gotBody = buf[:n]
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("a", 50))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(gotBody) != 50 {
		t.Fatalf("expected 50 bytes read, got %d", len(gotBody))
	}
}

// TestRequestBodyLimit_ExceedsLimit verifies that reading beyond the cap returns an error.
func TestRequestBodyLimit_ExceedsLimit(t *testing.T) {
	const limit int64 = 10

	var readErr error
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, limit+5)
		_, readErr = r.Body.Read(buf)
		if readErr != nil {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	h := httpx.RequestBodyLimit(limit)(inner)
	body := strings.NewReader(strings.Repeat("x", int(limit)+1))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", body))

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rr.Code)
	}
}

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(rate int) http.Handler {
	r := httpx.NewRouter(httpx.ServerConfig{
		ServiceName:        "test",
		IsDevelopment:      true,
		CORSAllowedOrigins: "https://app.example.com",
		RateLimitPerMinute: rate,
	}, passthrough, passthrough, passthrough, passthrough)
	r.Get("/api/items", okHandler)
	return r
}

// TestNewRouter_UnknownRouteIsJSON verifies 404s use the API error shape.
func TestNewRouter_UnknownRouteIsJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(0).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"message":"Not found"`) {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
}

// TestNewRouter_MethodNotAllowed verifies unsupported methods answer 405.
func TestNewRouter_MethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(0).ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/items", http.NoBody))

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

// TestNewRouter_RateLimit verifies requests beyond the per-minute cap get 429.
func TestNewRouter_RateLimit(t *testing.T) {
	h := newTestRouter(2)
	codes := make([]int, 0, 3)
	for range 3 {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/items", http.NoBody)
		req.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence: %v", codes)
	}
}

// TestCORSMiddleware_ExposesListingHeaders verifies browsers can read paging and Location headers.
func TestCORSMiddleware_ExposesListingHeaders(t *testing.T) {
	h := httpx.CORSMiddleware("https://app.example.com")(http.HandlerFunc(okHandler))
	req := httptest.NewRequest(http.MethodGet, "/api/items", http.NoBody)
	req.Header.Set("Origin", "https://app.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin: got %q", got)
	}
	exposed := rr.Header().Get("Access-Control-Expose-Headers")
	for _, want := range []string{"Location", httpx.TotalCountHeader} {
		if !strings.Contains(exposed, want) {
			t.Errorf("Expose-Headers %q missing %q", exposed, want)
		}
	}
}
