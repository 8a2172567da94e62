package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewRouter_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter([]string{"http://localhost:3000"})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBuildServer(t *testing.T) {
	srv := BuildServer(Addr("127.0.0.1", 8080), http.NotFoundHandler(), time.Second, 2*time.Second, 3*time.Second, zap.NewNop())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr)
	assert.Equal(t, 2*time.Second, srv.WriteTimeout)
	assert.NotNil(t, srv.ErrorLog)
}
