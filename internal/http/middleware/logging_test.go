package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	log.Logger = zerolog.New(&buf)
	return &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/api/v1/realms", func(c *gin.Context) {
		v, _ := c.Get(requestIDKey)
		seen = asString(v)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/realms", nil))
	gen := w.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(gen); err != nil {
		t.Fatalf("generated id %q is not a uuid: %v", gen, err)
	}
	if seen != gen {
		t.Fatalf("context id %q != header id %q", seen, gen)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/realms", nil)
	req.Header.Set("x-request-id", "batch-eu-0042")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "batch-eu-0042" || seen != "batch-eu-0042" {
		t.Fatalf("incoming id not propagated: header=%q ctx=%q", got, seen)
	}
}

func TestRecovery_PanicsToJSON500AndLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogger(t)

	r := gin.New()
	r.Use(RequestID(), RedactingLogger(RedactOptions{}), Recovery())
	r.GET("/api/v1/items", func(c *gin.Context) { panic("nil statistics") })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items?realmId=1&itemId=2", nil)
	req.Header.Set(requestIDHeader, "rid-panic")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body["code"] != "internal_error" || body["message"] != "internal server error" || body["request_id"] != "rid-panic" {
		t.Fatalf("unexpected body: %v", body)
	}

	var sawPanic, sawAccess bool
	for _, m := range logLines(t, buf) {
		switch m["message"] {
		case "panic recovered":
			sawPanic = m["request_id"] == "rid-panic"
		case "http_request":
			sawAccess = m["level"] == "error" && m["status"] == float64(500)
		}
	}
	if !sawPanic || !sawAccess {
		t.Fatalf("missing panic or access log:\n%s", buf.String())
	}
}

func TestRecovery_PanicAfterWrite_KeepsPartialResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_ = captureLogger(t)

	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/api/v1/realms", func(c *gin.Context) {
		c.String(http.StatusOK, "[")
		panic("encoder failed mid-stream")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/realms", nil))

	if w.Code != http.StatusOK || w.Body.String() != "[" {
		t.Fatalf("partial response altered: %d %q", w.Code, w.Body.String())
	}
}

func TestLoggerFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("falls back to global logger", func(t *testing.T) {
		buf := captureLogger(t)
		r := gin.New()
		r.Use(RequestID())
		r.GET("/api/v1/realms", func(c *gin.Context) {
			LoggerFrom(c).Info().Msg("listing")
			c.Status(http.StatusOK)
		})
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/realms", nil))

		lines := logLines(t, buf)
		if len(lines) != 1 || lines[0]["message"] != "listing" {
			t.Fatalf("unexpected logs: %v", lines)
		}
		if _, ok := lines[0]["request_id"]; ok {
			t.Fatalf("global logger must not carry a request id")
		}
	})

	t.Run("request scoped via gin and context", func(t *testing.T) {
		buf := captureLogger(t)
		r := gin.New()
		r.Use(RequestID(), RedactingLogger(RedactOptions{}))
		r.GET("/api/v1/realms/:id", func(c *gin.Context) {
			LoggerFrom(c).Info().Msg("from-gin")
			zerolog.Ctx(c.Request.Context()).Info().Msg("from-ctx")
			c.Status(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/realms/7", nil)
		req.Header.Set(requestIDHeader, "rid-42")
		r.ServeHTTP(httptest.NewRecorder(), req)

		lines := logLines(t, buf)
		if len(lines) != 3 {
			t.Fatalf("want two handler lines and one access line, got %d", len(lines))
		}
		for _, m := range lines {
			if m["request_id"] != "rid-42" || m["path"] != "/api/v1/realms/:id" {
				t.Fatalf("line missing request fields: %v", m)
			}
		}
	})
}

func TestHelpers_asString_and_truncate(t *testing.T) {
	if asString("x") != "x" || asString(123) != "" || asString(nil) != "" {
		t.Fatalf("asString failed")
	}
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"realmId=1", 20, "realmId=1"},
		{"realmId=1&itemId=2", 9, "realmId=1…"},
		{"abc", 0, "abc"},
	}
	for _, tc := range tests {
		if got := truncate(tc.in, tc.n); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q; want %q", tc.in, tc.n, got, tc.want)
		}
	}
}
