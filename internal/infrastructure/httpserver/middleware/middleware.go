package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// MiddlewareCollection holds all middleware instances
type MiddlewareCollection struct {
	Logging  *LoggingMiddleware
	Metrics  *MetricsMiddleware
	AdminKey *AdminKeyMiddleware
}

// NewMiddlewareCollection creates a new collection of all middleware
func NewMiddlewareCollection(
	logger *logrus.Logger,
	adminAPIKey string,
	requestsTotal *prometheus.CounterVec,
	requestDuration *prometheus.HistogramVec,
) *MiddlewareCollection {
	return &MiddlewareCollection{
		Logging:  NewLoggingMiddleware(logger),
		Metrics:  NewMetricsMiddleware(requestsTotal, requestDuration),
		AdminKey: NewAdminKeyMiddleware(adminAPIKey, logger),
	}
}
