package telemetry

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/itemregistry/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "test-service",
		ServiceVersion: "test",
		Environment:    "testing",
		OtelEndpoint:   "", // disabled
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	tel, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tel.MetricsHandler() == nil {
		t.Fatal("expected non-nil metrics handler")
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_MetricsHandlerServesPrometheusFormat(t *testing.T) {
	tel, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer tel.Shutdown(context.Background()) //nolint:errcheck

	counter, err := tel.Meter("test").Int64Counter("items.created")
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	counter.Add(context.Background(), 2)

	rr := httptest.NewRecorder()
	tel.MetricsHandler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	ct := rr.Header().Get("Content-Type")
	if !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
	body, _ := io.ReadAll(rr.Body)
	for _, want := range []string{"created_total", "go_goroutines"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestSetup_Repeatable(t *testing.T) {
	for range 2 {
		tel, err := Setup(context.Background(), baseConfig())
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		_ = tel.Shutdown(context.Background())
	}
}

func TestSetupSentry_EmptyDSN(t *testing.T) {
	if err := SetupSentry(baseConfig()); err != nil {
		t.Fatalf("expected no-op for empty DSN, got %v", err)
	}
}

func TestCaptureError_WithoutClient(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/items/1", http.NoBody)
	CaptureError(r, errors.New("boom"))
}
