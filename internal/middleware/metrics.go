package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "govportal_redis_errors_total",
	Help: "Total number of Redis command errors.",
}, []string{"command"})

// RequestsReviewed counts request lifecycle transitions by entity and outcome.
var RequestsReviewed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "govportal_requests_reviewed_total",
	Help: "Total number of reviewed requests by entity and outcome.",
}, []string{"entity", "outcome"})

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus handler as a fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
