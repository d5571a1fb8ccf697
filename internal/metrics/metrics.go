// Package metrics exposes Prometheus instrumentation for the analysis
// engine. The engine accepts a nil *Metrics, so embedding callers that do
// not run an observability stack pay nothing.
package metrics

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the analysis engine.
type Metrics struct {
	AnalysesTotal       prometheus.Counter
	AnalyzeDur          prometheus.Histogram
	IndicatorComputeDur *prometheus.HistogramVec // labels: indicator
	SignalsTotal        *prometheus.CounterVec   // labels: action
	ConflictsTotal      prometheus.Counter
	ExplanationsTotal   prometheus.Counter
}

// NewMetrics registers and returns all engine metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taengine_analyses_total",
			Help: "Total Analyze calls completed",
		}),
		AnalyzeDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taengine_analyze_duration_seconds",
			Help:    "Wall time of one full Analyze call",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		IndicatorComputeDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taengine_indicator_compute_duration_seconds",
			Help:    "Wall time of one indicator computation",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12),
		}, []string{"indicator"}),
		SignalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taengine_signals_total",
			Help: "Signals emitted by action",
		}, []string{"action"}),
		ConflictsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taengine_conflicts_total",
			Help: "Conflicting indicator pairs detected",
		}),
		ExplanationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taengine_explanations_total",
			Help: "Indicator explanations generated",
		}),
	}

	prometheus.MustRegister(
		m.AnalysesTotal,
		m.AnalyzeDur,
		m.IndicatorComputeDur,
		m.SignalsTotal,
		m.ConflictsTotal,
		m.ExplanationsTotal,
	)

	return m
}

// Server runs an HTTP server exposing /metrics.
type Server struct {
	addr string
	srv  *http.Server
}

// NewServer creates a metrics server.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		log.Printf("[metrics] server listening on %s", s.addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("[metrics] server error: %v", err)
		}
	}()
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) {
	s.srv.Shutdown(ctx)
}
