package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func runLogged(t *testing.T, path string) string {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "rid-123")

	h := Logger(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.String()
}

func TestLogger_LogsRequestLine(t *testing.T) {
	line := runLogged(t, "/api/v1/births/statistics")

	for _, want := range []string{
		`"request_id":"rid-123"`,
		`"method":"GET"`,
		`"path":"/api/v1/births/statistics"`,
		`"status":200`,
	} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %s: %s", want, line)
		}
	}
}

func TestLogger_SkipsHealthProbes(t *testing.T) {
	if line := runLogged(t, "/health/db"); line != "" {
		t.Errorf("expected health probes unlogged, got %s", line)
	}
}

func TestLogger_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/births", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Logger(zerolog.New(&buf))(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "no records found")
	})
	if err := h(c); err == nil {
		t.Fatal("expected handler error to pass through")
	}
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Errorf("expected error-level log, got %s", buf.String())
	}
}
