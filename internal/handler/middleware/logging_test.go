//go:build unit

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEngine(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	engine := gin.New()
	engine.Use(RequestLogger(logger))
	engine.GET("/things/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	return engine
}

func TestRequestLogger(t *testing.T) {
	t.Run("keeps incoming request id", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newLoggedEngine(&buf)

		req := httptest.NewRequest(http.MethodGet, "/things/42", nil)
		req.Header.Set(RequestIDHeader, "edge-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "edge-123", w.Header().Get(RequestIDHeader))
		assert.Contains(t, buf.String(), `"request_id":"edge-123"`)
		assert.Contains(t, buf.String(), `"path":"/things/:id"`)
		assert.Contains(t, buf.String(), `"level":"INFO"`)
	})

	t.Run("generates an id and warns on client errors", func(t *testing.T) {
		var buf bytes.Buffer
		engine := newLoggedEngine(&buf)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Len(t, w.Header().Get(RequestIDHeader), 36)
		assert.Contains(t, buf.String(), `"path":"/missing"`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})
}
