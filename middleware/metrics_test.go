package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	route := gin.New()
	route.Use(Logger(), Metrics())
	route.GET("/restaurants/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/restaurants/:id", "200"))
	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/restaurants/"+id, nil)
		route.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/restaurants/:id", "200"))
	assert.Equal(t, before+2, after)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/nowhere", nil)
	route.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
