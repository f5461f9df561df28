package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pingHandler struct{}

func (pingHandler) Register(router *gin.RouterGroup) {
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte("http:\n  address: \"127.0.0.1:0\"\n  allowed_origins: [\"http://localhost:3000\"]\n"))
	require.NoError(t, err)
	return cfg
}

func TestNewRouter_MountsHandlersUnderAPIPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testConfig(t), zap.NewNop(), pingHandler{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewRouter_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testConfig(t), zap.NewNop(), pingHandler{})

	req := httptest.NewRequest("OPTIONS", "/api/v1/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_Swagger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	docFile := filepath.Join(t.TempDir(), "openapi.json")
	require.NoError(t, os.WriteFile(docFile, []byte(`{"openapi":"3.0.3"}`), 0o644))

	cfg := testConfig(t)
	cfg.HTTP.SwaggerFile = docFile
	router := NewRouter(cfg, zap.NewNop())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", specPath, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/swagger/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- Run(ctx, cfg, zap.NewNop(), pingHandler{}) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
