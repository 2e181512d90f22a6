package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"asana-drive-backup/config"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := &HTTPServer{l: &mockLogger{}, cfg: &config.Config{}}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	srv.healthCheck(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if resp.Status != "healthy" || resp.Timestamp == "" {
		t.Errorf("unexpected body: %+v", resp)
	}
}

func TestConfigCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Asana.AccessToken = "secret-token"
	cfg.Google.ServiceAccountJSON = `{"type":"service_account"}`

	srv := &HTTPServer{l: &mockLogger{}, cfg: cfg}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	srv.configCheck(c)

	var resp struct {
		Message    string `json:"message"`
		Configured struct {
			Asana          bool `json:"asana"`
			Workspace      bool `json:"workspace"`
			Drive          bool `json:"drive"`
			ServiceAccount bool `json:"serviceAccount"`
		} `json:"configured"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	got := resp.Configured
	if !got.Asana || got.Workspace || got.Drive || !got.ServiceAccount {
		t.Errorf("unexpected presence flags: %+v", got)
	}

	// Values themselves must never leak into the body.
	body := w.Body.String()
	for _, secret := range []string{"secret-token", "service_account"} {
		if strings.Contains(body, secret) {
			t.Errorf("response leaks configured value %q", secret)
		}
	}
}
