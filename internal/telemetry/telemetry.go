// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for the classification pipeline and the evaluation harness.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "screensift"

// Evaluation outcome labels for the samples_evaluated_total counter.
const (
	OutcomeClassified     = "classified"
	OutcomeMalformed      = "malformed"
	OutcomeUnclassifiable = "unclassifiable"
)

// Metrics holds the Prometheus collectors for the pipeline.
type Metrics struct {
	PredictionsTotal       *prometheus.CounterVec
	ClassificationDuration prometheus.Histogram
	SamplesEvaluated       *prometheus.CounterVec
	EvaluationDuration     prometheus.Histogram
}

// Provider bundles the metrics registry and the tracer. A nil *Provider is
// valid everywhere one is accepted and disables telemetry.
type Provider struct {
	Metrics  *Metrics
	registry *prometheus.Registry
	tracer   trace.Tracer
}

// NewProvider creates a telemetry provider backed by its own registry.
func NewProvider() *Provider {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	metrics := &Metrics{
		PredictionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "predictions_total",
			Help:      "Predictions by label.",
		}, []string{"label"}),
		ClassificationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "classification_duration_seconds",
			Help:      "Time spent classifying a single record.",
			Buckets:   prometheus.DefBuckets,
		}),
		SamplesEvaluated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "samples_evaluated_total",
			Help:      "Evaluated samples by outcome.",
		}, []string{"outcome"}),
		EvaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "evaluation_duration_seconds",
			Help:      "Wall time of a full evaluation run.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}

	return &Provider{
		Metrics:  metrics,
		registry: registry,
		tracer:   otel.Tracer(serviceName),
	}
}

// StartSpan begins a tracing span. Safe on a nil provider.
func (p *Provider) StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if p == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return p.tracer.Start(ctx, name)
}

// RecordClassification records one classification outcome.
func (p *Provider) RecordClassification(label string, duration time.Duration) {
	if p == nil {
		return
	}
	p.Metrics.PredictionsTotal.WithLabelValues(label).Inc()
	p.Metrics.ClassificationDuration.Observe(duration.Seconds())
}

// RecordEvaluation records the outcome counts and wall time of one run.
func (p *Provider) RecordEvaluation(classified, malformed, unclassifiable int, duration time.Duration) {
	if p == nil {
		return
	}
	p.Metrics.SamplesEvaluated.WithLabelValues(OutcomeClassified).Add(float64(classified))
	p.Metrics.SamplesEvaluated.WithLabelValues(OutcomeMalformed).Add(float64(malformed))
	p.Metrics.SamplesEvaluated.WithLabelValues(OutcomeUnclassifiable).Add(float64(unclassifiable))
	p.Metrics.EvaluationDuration.Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape handler for this provider's registry.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
