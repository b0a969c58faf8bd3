package logfacade

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/Station-Manager/logfacade"

const (
	outcomeRejected   = "rejected"
	outcomeSuppressed = "suppressed"
	outcomeForwarded  = "forwarded"
)

type reportMetrics struct {
	reports  metric.Int64Counter
	failures metric.Int64Counter
}

func newReportMetrics(mp metric.MeterProvider) *reportMetrics {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	m := &reportMetrics{}
	if counter, err := meter.Int64Counter("logfacade.reports",
		metric.WithDescription("Error reports by severity and outcome"),
		metric.WithUnit("{report}")); err == nil {
		m.reports = counter
	}
	if counter, err := meter.Int64Counter("logfacade.backend_failures",
		metric.WithDescription("Reporting backend calls that failed or panicked"),
		metric.WithUnit("{call}")); err == nil {
		m.failures = counter
	}
	return m
}

func (m *reportMetrics) recordReport(sev Severity, outcome string) {
	if m == nil || m.reports == nil {
		return
	}
	m.reports.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("severity", sev.String()),
		attribute.String("outcome", outcome),
	))
}

func (m *reportMetrics) recordFailure(backend string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("backend", backend),
	))
}
