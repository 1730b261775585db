package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	matchAttempts       *prometheus.CounterVec
	matchDuration       prometheus.Histogram
	menusCreated        prometheus.Counter
	rematchTotal        prometheus.Counter
	rematchMatched      prometheus.Counter
	activeStandardMenus prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		matchAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menu_match_attempts_total",
				Help: "Total number of menu match attempts by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		matchDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "menu_match_duration_milliseconds",
				Help:    "Menu match attempt duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		menusCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "menus_created_total",
				Help: "Total number of menus created",
			},
		),
		rematchTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rematch_processed_total",
				Help: "Total number of menus processed by rematch batches",
			},
		),
		rematchMatched: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "rematch_matched_total",
				Help: "Total number of menus matched by rematch batches",
			},
		),
		activeStandardMenus: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "standard_menus_active",
				Help: "Current number of active standard menus",
			},
		),
	}
}

func (m *PrometheusMetrics) RecordMatchAttempt(method, outcome string, duration time.Duration) {
	m.matchAttempts.WithLabelValues(method, outcome).Inc()
	m.matchDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordMenuCreated() {
	m.menusCreated.Inc()
}

func (m *PrometheusMetrics) RecordRematchBatch(total, matched int) {
	m.rematchTotal.Add(float64(total))
	m.rematchMatched.Add(float64(matched))
}

func (m *PrometheusMetrics) SetActiveStandardMenus(count int) {
	m.activeStandardMenus.Set(float64(count))
}
