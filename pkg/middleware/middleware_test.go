package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naturapi/pkg/logger"
	"naturapi/pkg/metrics"
)

func TestTraceIDMiddlewareSetsHeaderAndContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = c.GetString("trace_id")
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Trace-ID"))
}

func TestTraceIDMiddlewareKeepsIncomingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", "upstream-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-123", rec.Header().Get("X-Trace-ID"))
}

func TestCORSAllowsAnyOriginByDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"*"}))
	r.OPTIONS("/poi/createPois", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodOptions, "/poi/createPois", nil)
	req.Header.Set("Origin", "http://cualquier.origen")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRestrictsToConfiguredOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:5173", " http://127.0.0.1:5173"}))
	r.GET("/healthCheck", func(c *gin.Context) { c.Status(http.StatusOK) })

	allowed := httptest.NewRequest(http.MethodGet, "/healthCheck", nil)
	allowed.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, allowed)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/healthCheck", nil)
	denied.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, denied)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequestLoggerRecordsMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.NewManager()
	r := gin.New()
	r.Use(RequestLogger(logger.NewNop(), m))
	r.GET("/fauna/getFaunaById/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fauna/getFaunaById/3", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	n, err := testutil.GatherAndCount(m.Registry(), "naturapi_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
