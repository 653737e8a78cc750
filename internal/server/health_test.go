package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLivenessHandler(t *testing.T) {
	h := NewHealthChecker(nil)

	rec := httptest.NewRecorder()
	h.LivenessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != healthStatusOK {
		t.Errorf("Expected status %q, got %q", healthStatusOK, resp.Status)
	}
}

func TestReadinessHandlerReportsCredentials(t *testing.T) {
	// Without a server context there are no credentials to find; the check is
	// informational and must not fail readiness.
	h := NewHealthChecker(nil)

	rec := httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Checks["credentials"] != healthStatusMissing {
		t.Errorf("Expected credentials check %q, got %q", healthStatusMissing, resp.Checks["credentials"])
	}
	if resp.Checks["ready"] != healthStatusOK {
		t.Errorf("Expected ready check %q, got %q", healthStatusOK, resp.Checks["ready"])
	}
}

func TestReadinessHandlerNotReady(t *testing.T) {
	h := NewHealthChecker(nil)
	h.SetReady(false)

	rec := httptest.NewRecorder()
	h.ReadinessHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rec.Code)
	}
}

func TestDetailedHealthHandlerListsAccounts(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	h := NewHealthChecker(sc)

	rec := httptest.NewRecorder()
	h.DetailedHealthHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz/detailed", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var resp DetailedHealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Uptime == "" {
		t.Error("Expected non-empty uptime")
	}
	// Account list mirrors the cached clients, none yet in a fresh context
	// without tokens.
	for _, account := range resp.Accounts {
		if account == "" {
			t.Error("Account names must be non-empty")
		}
	}
}
