package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reqTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: "library_http_requests_total", Help: "HTTP requests by route, method and status"},
		[]string{"route", "method", "status"},
	)
	reqDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "library_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"},
	)
	reqInflight = promauto.NewGauge(
		prometheus.GaugeOpts{Name: "library_http_requests_inflight", Help: "HTTP requests currently being served"},
	)
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqInflight.Inc()
		c.Next()
		reqInflight.Dec()

		// 未匹配的路径统一归到 unmatched，防止 label 爆炸
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		reqTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		reqDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
