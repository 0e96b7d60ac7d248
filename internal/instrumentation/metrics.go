package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	attrMethod   = "method"
	attrPath     = "path"
	attrStatus   = "status"
	attrCategory = "category"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// HTTP metrics
	httpRequestsTotal   metric.Int64Counter
	httpRequestDuration metric.Float64Histogram

	// Gather invocation metrics
	gathersTotal   metric.Int64Counter
	gatherDuration metric.Float64Histogram

	// Per-category fetch metrics
	fetchesTotal  metric.Int64Counter
	fetchDuration metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The category label set is closed (the registry is a fixed list), so
// per-category labels carry no cardinality risk.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	// HTTP Metrics
	m.httpRequestsTotal, err = meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_requests_total counter: %w", err)
	}

	m.httpRequestDuration, err = meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration_seconds histogram: %w", err)
	}

	// Gather Metrics
	m.gathersTotal, err = meter.Int64Counter(
		"powerscale_gathers_total",
		metric.WithDescription("Total number of info gather invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create powerscale_gathers_total counter: %w", err)
	}

	m.gatherDuration, err = meter.Float64Histogram(
		"powerscale_gather_duration_seconds",
		metric.WithDescription("Info gather invocation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create powerscale_gather_duration_seconds histogram: %w", err)
	}

	// Fetch Metrics
	m.fetchesTotal, err = meter.Int64Counter(
		"powerscale_category_fetches_total",
		metric.WithDescription("Total number of per-category fetch operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create powerscale_category_fetches_total counter: %w", err)
	}

	m.fetchDuration, err = meter.Float64Histogram(
		"powerscale_category_fetch_duration_seconds",
		metric.WithDescription("Per-category fetch duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create powerscale_category_fetch_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordHTTPRequest records an HTTP request with method, path, status code, and duration.
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration) {
	if m == nil || m.httpRequestsTotal == nil || m.httpRequestDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrMethod, method),
		attribute.String(attrPath, path),
		attribute.String(attrStatus, strconv.Itoa(statusCode)),
	}

	m.httpRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.httpRequestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordGather records one gather invocation with status and duration.
func (m *Metrics) RecordGather(ctx context.Context, status string, duration time.Duration) {
	if m == nil || m.gathersTotal == nil || m.gatherDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrStatus, status),
	}

	m.gathersTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.gatherDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordCategoryFetch records one per-category fetch with category, status, and duration.
func (m *Metrics) RecordCategoryFetch(ctx context.Context, category, status string, duration time.Duration) {
	if m == nil || m.fetchesTotal == nil || m.fetchDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrCategory, category),
		attribute.String(attrStatus, status),
	}

	m.fetchesTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.fetchDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
