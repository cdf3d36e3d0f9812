package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func TestHTTPLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name      string
		target    string
		status    int
		wantLevel string
		wantRoute string
	}{
		{"success", "/predict/2?bath=3", http.StatusOK, "info", "/predict/:bhk"},
		{"client error", "/predict/0", http.StatusUnprocessableEntity, "warn", "/predict/:bhk"},
		{"server error", "/predict/2", http.StatusInternalServerError, "error", "/predict/:bhk"},
		{"no route", "/nowhere", http.StatusNotFound, "warn", unmatchedRoute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			r := gin.New()
			r.Use(HTTPLogger())
			r.GET("/predict/:bhk", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantRoute, entry["route"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, "[access]", entry["message"])
		})
	}
}
