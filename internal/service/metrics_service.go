package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/noah-isme/leaderboard-seeder/internal/models"
)

const metricsJob = "leaderboard_seeder"

// MetricsService records run metrics on a private registry and optionally pushes them.
type MetricsService struct {
	registry      *prometheus.Registry
	inserted      *prometheus.CounterVec
	events        *prometheus.CounterVec
	skipped       prometheus.Counter
	stageDuration *prometheus.HistogramVec
	pushURL       string
}

// NewMetricsService registers the seeding collectors. An empty pushURL disables Push.
func NewMetricsService(pushURL string) *MetricsService {
	registry := prometheus.NewRegistry()

	inserted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seed_records_inserted_total",
		Help: "Records written to the store, by entity",
	}, []string{"entity"})

	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seed_events_generated_total",
		Help: "Generated achievement events, by review status",
	}, []string{"status"})

	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "seed_skipped_students_total",
		Help: "Students skipped during event generation",
	})

	stageDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "seed_stage_duration_seconds",
		Help:    "Duration of each seeding stage",
		Buckets: prometheus.ExponentialBuckets(0.005, 4, 8),
	}, []string{"stage"})

	registry.MustRegister(inserted, events, skipped, stageDuration)

	return &MetricsService{
		registry:      registry,
		inserted:      inserted,
		events:        events,
		skipped:       skipped,
		stageDuration: stageDuration,
		pushURL:       pushURL,
	}
}

// Registry exposes the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveStage records how long a stage took.
func (m *MetricsService) ObserveStage(stage string, duration time.Duration) {
	if m == nil {
		return
	}
	m.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordInserted adds n written records for entity.
func (m *MetricsService) RecordInserted(entity string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.inserted.WithLabelValues(entity).Add(float64(n))
}

// RecordEvents adds the generated events per status.
func (m *MetricsService) RecordEvents(byStatus map[models.EventStatus]int) {
	if m == nil {
		return
	}
	for status, n := range byStatus {
		m.events.WithLabelValues(string(status)).Add(float64(n))
	}
}

// RecordSkipped adds n skipped students.
func (m *MetricsService) RecordSkipped(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.skipped.Add(float64(n))
}

// PushEnabled reports whether a Pushgateway is configured.
func (m *MetricsService) PushEnabled() bool {
	return m != nil && m.pushURL != ""
}

// Push sends the registry to the configured Pushgateway.
func (m *MetricsService) Push(ctx context.Context) error {
	if !m.PushEnabled() {
		return nil
	}
	if err := push.New(m.pushURL, metricsJob).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", m.pushURL, err)
	}
	return nil
}
