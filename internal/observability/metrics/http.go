package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics captures low-cardinality HTTP server metrics.
type HTTPMetrics struct {
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

func NewHTTPMetrics(reg prometheus.Registerer) (*HTTPMetrics, error) {
	m := &HTTPMetrics{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_server_duration_seconds",
			Help:    "HTTP request duration by endpoint and status code.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "status_code"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_server_in_flight",
			Help: "Requests currently being served.",
		}),
	}
	if err := reg.Register(m.requestDuration); err != nil {
		return nil, err
	}
	if err := reg.Register(m.inFlight); err != nil {
		return nil, err
	}
	return m, nil
}

// GinMiddleware records request duration and in-flight counts. Unmatched
// routes collapse into one label to keep cardinality bounded.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.inFlight.Inc()
		start := time.Now()
		c.Next()
		m.inFlight.Dec()

		m.requestDuration.
			WithLabelValues(endpoint, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
