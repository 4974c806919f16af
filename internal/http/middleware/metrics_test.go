package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersInflightAndUnmatched(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/prints/:number", func(c *gin.Context) { c.String(http.StatusOK, "hello") })
	r.GET("/statusonly", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET(metricsPath, func(c *gin.Context) { c.Status(http.StatusOK) })

	baseOK := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/prints/:number", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", unmatchedPath, "404"))
	baseScrape := testutil.ToFloat64(httpReqs.WithLabelValues("GET", metricsPath, "200"))

	for _, p := range []string{"/prints/1", "/prints/2", "/nope/a", "/nope/b", "/statusonly", metricsPath} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/prints/:number", "200")); got != baseOK+2 {
		t.Fatalf("route counter = %v; want %v", got, baseOK+2)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", unmatchedPath, "404")); got != base404+2 {
		t.Fatalf("unmatched counter = %v; want %v", got, base404+2)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", metricsPath, "200")); got != baseScrape {
		t.Fatalf("/metrics must not be counted, got %v", got)
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
}
