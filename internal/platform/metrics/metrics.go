// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes the catalog's Prometheus collectors.

Collectors are registered on a dedicated registry rather than the global one,
so that every [Collector] (one per process, several per test binary) is
independent.

Exported series:

  - catalog_http_requests_total{method,status}
  - catalog_http_request_duration_seconds{method}
  - catalog_validation_violations_total{code}
  - catalog_duplications_total{kind}
  - catalog_duplicated_nodes_total{kind}
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the catalog metrics. A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	violationsTotal *prometheus.CounterVec
	duplications    *prometheus.CounterVec
	duplicatedNodes *prometheus.CounterVec
}

// New creates a [Collector] with its own registry, including the Go runtime collectors.
func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	factory := promauto.With(registry)

	return &Collector{
		registry: registry,

		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		violationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_validation_violations_total",
				Help: "Total number of reported validation violations by code",
			},
			[]string{"code"},
		),
		duplications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_duplications_total",
				Help: "Total number of duplicated aggregates and subtrees",
			},
			[]string{"kind"},
		),
		duplicatedNodes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_duplicated_nodes_total",
				Help: "Total number of nodes created by duplication",
			},
			[]string{"kind"},
		),
	}
}

// # Recording

// ObserveRequest records one finished HTTP request.
func (collector *Collector) ObserveRequest(method string, status int, elapsed time.Duration) {
	if collector == nil {
		return
	}
	collector.requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	collector.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveViolations counts each reported violation code.
func (collector *Collector) ObserveViolations(codes []string) {
	if collector == nil {
		return
	}
	for _, code := range codes {
		collector.violationsTotal.WithLabelValues(code).Inc()
	}
}

// Duplicated records one duplication of kind that created nodes nodes.
func (collector *Collector) Duplicated(kind string, nodes int) {
	if collector == nil {
		return
	}
	collector.duplications.WithLabelValues(kind).Inc()
	collector.duplicatedNodes.WithLabelValues(kind).Add(float64(nodes))
}

// # Exposition

// Handler serves the registry in the Prometheus text format.
func (collector *Collector) Handler() http.Handler {
	if collector == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(collector.registry, promhttp.HandlerOpts{})
}

