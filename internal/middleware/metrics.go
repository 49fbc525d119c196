package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacedout_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// GeocodeRequests counts geocoding lookups by outcome
	// (resolved, not_found, error).
	GeocodeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacedout_geocode_requests_total",
		Help: "Total number of geocoding lookups by outcome",
	}, []string{"outcome"})

	// SessionVerifications counts session-token checks by result.
	SessionVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spacedout_session_verifications_total",
		Help: "Total number of session token verifications by result",
	}, []string{"result"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
