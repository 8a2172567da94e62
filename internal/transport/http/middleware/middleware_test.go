package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vacation-api/internal/core/auth"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", okHandler)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Header().Get(KeyRequestID))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(KeyRequestID, id)
	assert.Equal(t, id, serve(r, req).Header().Get(KeyRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(KeyRequestID, "<script>")
	assert.NotEqual(t, "<script>", serve(r, req).Header().Get(KeyRequestID))
}

func TestRateLimitPerIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitPerIP(0.001, 2))
	r.GET("/", okHandler)

	from := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		return serve(r, req).Code
	}
	assert.Equal(t, http.StatusOK, from("10.0.0.1"))
	assert.Equal(t, http.StatusOK, from("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, from("10.0.0.1"))
	assert.Equal(t, http.StatusOK, from("10.0.0.2"))
}

func TestIPLimiterSweep(t *testing.T) {
	now := time.Now()
	l := &ipLimiter{rps: 1, burst: 1, idle: time.Minute, swept: now, buckets: map[string]*ipBucket{}}
	assert.True(t, l.allow("a", now))
	assert.True(t, l.allow("b", now.Add(2*time.Minute)))
	assert.NotContains(t, l.buckets, "a")
	assert.Contains(t, l.buckets, "b")
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(0.001, 1))
	r.GET("/", okHandler)

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"code":429`)
}

func TestMaxBodyBytes(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodyBytes(8))
	r.POST("/", okHandler)

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("tiny")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(10 * time.Millisecond))
	r.GET("/", func(c *gin.Context) { <-c.Request.Context().Done() })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/", func(*gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}

func TestAuthenticateAndRequireRole(t *testing.T) {
	codec, err := auth.NewCodec(auth.Options{Secret: []byte("mw-secret")})
	require.NoError(t, err)
	g := auth.NewGuard(codec)

	r := gin.New()
	r.Use(AccessLog(zap.NewNop()))
	r.GET("/me", Authenticate(g), func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, p.Email)
	})
	r.GET("/boss", RequireRole(g, auth.RoleManager), okHandler)

	tok, err := codec.Issue(auth.Principal{ID: 2, Name: "E", Email: "e@example.com", Role: auth.RoleEmployee})
	require.NoError(t, err)
	get := func(path, bearer string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if bearer != "" {
			req.Header.Set("Authorization", bearer)
		}
		return serve(r, req)
	}

	w := get("/me", "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "e@example.com", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get("/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get("/me", "bearer "+tok).Code)
	assert.Equal(t, http.StatusUnauthorized, get("/boss", "").Code)
	assert.Equal(t, http.StatusForbidden, get("/boss", "Bearer "+tok).Code)
}

func TestConcurrencyLimit(t *testing.T) {
	r := gin.New()
	r.Use(ConcurrencyLimit(1))
	r.GET("/", okHandler)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}
