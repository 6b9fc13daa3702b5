package server

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	pkgserver "github.com/DjordjeVuckovic/fxbench/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("USE_HTTP2", "")
		t.Setenv("CORS_ORIGINS", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.False(t, cfg.UseHttp2)
		assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("USE_HTTP2", "true")
		t.Setenv("CORS_ORIGINS", "http://localhost:3000, http://bench.local")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.UseHttp2)
		assert.Equal(t, []string{"http://localhost:3000", "http://bench.local"}, cfg.CorsOrigins)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "invalid port")
	})
}

func TestServer_Health(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Port: "0", CorsOrigins: []string{"*"}}

	healthy := NewServer(echo.New(), cfg, pkgserver.NewDirHealthChecker(dir))
	rec := httptest.NewRecorder()
	healthy.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	missing := NewServer(echo.New(), cfg, pkgserver.NewDirHealthChecker(filepath.Join(dir, "gone")))
	rec = httptest.NewRecorder()
	missing.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
