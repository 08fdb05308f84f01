// SuiteBot - Slack to webhook relay bridge
// License: MIT

package health

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthResponse(t *testing.T) {
	srv := NewServer(0)

	for _, path := range []string{"/", "/anything"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content-type = %q, want application/json", ct)
			}

			raw, _ := io.ReadAll(rec.Body)
			var payload map[string]string
			if err := json.Unmarshal(raw, &payload); err != nil {
				t.Fatalf("body is not JSON: %v", err)
			}
			if payload["status"] != "healthy" || payload["bot"] != "running" {
				t.Errorf("body = %s", raw)
			}
		})
	}
}

func TestStartAndShutdown(t *testing.T) {
	srv := NewServer(0) // port 0: any free port, bind must succeed
	errCh := srv.Start()

	select {
	case err := <-errCh:
		t.Fatalf("Start() failed: %v", err)
	default:
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
