package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestScanEndpoint_Route(t *testing.T) {
	e := &ScanEndpoint{}
	method, path, handler := e.Route()
	if method != "POST" || path != "/v1/toc" {
		t.Fatalf("Route() = %s %s, want POST /v1/toc", method, path)
	}
	if handler == nil {
		t.Fatal("Route() returned a nil handler")
	}
	if e.RequiresInit() {
		t.Error("RequiresInit() = true, want false")
	}
}

func TestScanEndpoint_Handler_MissingBody(t *testing.T) {
	e := &ScanEndpoint{}
	req := httptest.NewRequest(http.MethodPost, "/v1/toc", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	e.handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestScanEndpoint_Handler_NoResult(t *testing.T) {
	e := &ScanEndpoint{}
	body, _ := json.Marshal(ScanRequest{Text: "just a line\nanother line\n"})
	req := httptest.NewRequest(http.MethodPost, "/v1/toc", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	e.handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestScanEndpoint_Handler_Result(t *testing.T) {
	var b strings.Builder
	digits := []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十"}
	for i := 0; i < 10; i++ {
		b.WriteString("第" + digits[i] + "章 Title\n")
		b.WriteString(strings.Repeat("x", 500) + "\n")
	}

	e := &ScanEndpoint{}
	body, _ := json.Marshal(ScanRequest{Text: b.String()})
	req := httptest.NewRequest(http.MethodPost, "/v1/toc", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	e.handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp ScanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RunID == "" {
		t.Error("expected a non-empty run id")
	}
	if resp.Result == nil || len(resp.Result.Content) != 10 {
		t.Errorf("Result.Content length = %v, want 10", resp.Result)
	}
}

func TestHealthEndpoint_Handler(t *testing.T) {
	e := &HealthEndpoint{}
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Status = %q, want ok", resp.Status)
	}
}
