package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "teamadmin_login_total",
			Help: "Total number of admin login attempts",
		},
	)

	UserCreateCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "teamadmin_users_created_total",
			Help: "Total number of users created",
		},
	)

	TeamCreateCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "teamadmin_teams_created_total",
			Help: "Total number of teams created",
		},
	)

	MembershipOpCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamadmin_membership_ops_total",
			Help: "Total number of membership operations",
		},
		[]string{"operation"}, // operation can be "add", "remove", "set_role"
	)

	BackupCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "teamadmin_backups_total",
			Help: "Total number of database backups served",
		},
	)

	RestoreCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "teamadmin_restores_total",
			Help: "Total number of database restores performed",
		},
	)

	StoreErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamadmin_store_errors_total",
			Help: "Total number of store-layer errors",
		},
		[]string{"type"}, // type can be "conflict", "not_found", "unavailable", "internal"
	)

	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teamadmin_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// Histogram metrics
var (
	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "teamadmin_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(UserCreateCounter)
	prometheus.MustRegister(TeamCreateCounter)
	prometheus.MustRegister(MembershipOpCounter)
	prometheus.MustRegister(BackupCounter)
	prometheus.MustRegister(RestoreCounter)
	prometheus.MustRegister(StoreErrorCounter)
	prometheus.MustRegister(HttpRequestsTotal)
	prometheus.MustRegister(HttpRequestDuration)
}

// RecordStoreError increments the store error counter for the given type
func RecordStoreError(errorType string) {
	StoreErrorCounter.WithLabelValues(errorType).Inc()
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// MetricsMiddleware is an Echo middleware function that records HTTP request metrics
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			method := c.Request().Method
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)

			duration := time.Since(start).Seconds()
			HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
			HttpRequestDuration.WithLabelValues(method, path, status).Observe(duration)

			return err
		}
	}
}
