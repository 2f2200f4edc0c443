// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics collects and exposes Prometheus metrics for the API.
//
// Services depend on small interfaces declared on their side; [Collector]
// satisfies all of them and [Nop] is a zero-cost stand-in for tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "salesdesk"

// Collector records Prometheus metrics for HTTP traffic, authentication and orders.
type Collector struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	signups       prometheus.Counter
	loginFailures prometheus.Counter
	logouts       prometheus.Counter
	ordersCreated prometheus.Counter
	orderTotal    prometheus.Histogram
	ordersDeleted prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	collector := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP responses by method, route pattern and status code.",
		}, []string{"method", "route", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_signups_total",
			Help:      "Accounts created.",
		}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_login_failures_total",
			Help:      "Rejected login attempts.",
		}),
		logouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_logouts_total",
			Help:      "Session tokens revoked by logout.",
		}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders persisted.",
		}),
		orderTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_total_amount",
			Help:      "Distribution of order totals.",
			Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		}),
		ordersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_deleted_total",
			Help:      "Order delete requests served.",
		}),
	}

	reg.MustRegister(
		collector.httpRequests,
		collector.httpDuration,
		collector.signups,
		collector.loginFailures,
		collector.logouts,
		collector.ordersCreated,
		collector.orderTotal,
		collector.ordersDeleted,
	)

	return collector
}

// RecordHTTPRequest counts a finished request and observes its latency.
func (collector *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	collector.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	collector.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordSignup counts a created account.
func (collector *Collector) RecordSignup() { collector.signups.Inc() }

// RecordLoginFailure counts a rejected login.
func (collector *Collector) RecordLoginFailure() { collector.loginFailures.Inc() }

// RecordLogout counts a revoked session token.
func (collector *Collector) RecordLogout() { collector.logouts.Inc() }

// RecordOrderCreated counts a persisted order and observes its total.
func (collector *Collector) RecordOrderCreated(total decimal.Decimal) {
	collector.ordersCreated.Inc()
	collector.orderTotal.Observe(total.InexactFloat64())
}

// RecordOrderDeleted counts an order delete request.
func (collector *Collector) RecordOrderDeleted() { collector.ordersDeleted.Inc() }

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) RecordSignup()                                        {}
func (Nop) RecordLoginFailure()                                  {}
func (Nop) RecordLogout()                                        {}
func (Nop) RecordOrderCreated(decimal.Decimal)                   {}
func (Nop) RecordOrderDeleted()                                  {}
