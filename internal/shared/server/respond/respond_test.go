package respond

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"legallens/internal/shared/telemetry"
)

func TestErrorWritesFlatBodyAndLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	restore := telemetry.SetOutput(&logs)
	defer restore()

	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		c.Set("requestId", "req-1")
		Error(c, http.StatusBadRequest, "validation_error", "No content provided")
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/fail", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "No content provided" {
		t.Fatalf("unexpected error body: %v", body)
	}
	if len(body) != 1 {
		t.Fatalf("expected only the error field, got %v", body)
	}

	line := strings.TrimSpace(logs.String())
	if !strings.Contains(line, `"code":"validation_error"`) || !strings.Contains(line, `"request_id":"req-1"`) {
		t.Fatalf("expected code and request id in log, got %s", line)
	}
}

func TestOKWritesPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ok", func(c *gin.Context) {
		OK(c, gin.H{"ok": true})
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ok", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if strings.TrimSpace(resp.Body.String()) != `{"ok":true}` {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}
