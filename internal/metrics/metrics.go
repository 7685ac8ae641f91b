package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// UsersRegistered counts successful registrations.
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "postboard_users_registered_total",
			Help: "Total number of users registered",
		},
	)

	// LoginAttempts counts login submissions by result (success, invalid, invalid_form, error).
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postboard_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	// PostsCreated counts posts stored.
	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "postboard_posts_created_total",
			Help: "Total number of posts created",
		},
	)
)

// UnmatchedRoute labels requests that matched no route, so unknown URLs
// share one series.
const UnmatchedRoute = "unmatched"

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal, UsersRegistered, LoginAttempts, PostsCreated)
}

// RecordRequest records duration and count for an HTTP request. route must be
// a route pattern or UnmatchedRoute, never a raw URL path.
func RecordRequest(method, route string, statusCode int, durationSeconds float64) {
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, route, status).Inc()
}

// IncUsersRegistered is called after a user row is committed.
func IncUsersRegistered() {
	UsersRegistered.Inc()
}

// IncLoginAttempt records one login submission with its result.
func IncLoginAttempt(result string) {
	LoginAttempts.WithLabelValues(result).Inc()
}

// IncPostsCreated is called after a post row is committed.
func IncPostsCreated() {
	PostsCreated.Inc()
}
