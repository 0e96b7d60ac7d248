package instrumentation

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Provider owns the OpenTelemetry meter and tracer providers plus the
// concrete metric instruments. A disabled provider is valid and all
// recording paths on it are no-ops.
type Provider struct {
	config Config

	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	promRegistry   *prometheus.Registry

	metrics *Metrics
}

// NewProvider initializes instrumentation according to the given config.
// When the config is disabled it returns a provider whose recording
// methods do nothing and whose Shutdown is trivial.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	p := &Provider{config: config}

	if !config.Enabled {
		return p, nil
	}

	res := sdkresource.NewSchemaless(
		attribute.String("service.name", config.ServiceName),
		attribute.String("service.version", config.ServiceVersion),
	)

	if err := p.setupMetrics(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}

	if err := p.setupTracing(ctx, res); err != nil {
		// Roll back the meter provider so a half-initialized provider
		// never leaks into the global state.
		_ = p.shutdownMetrics(ctx)
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}

	meter := p.meterProvider.Meter(config.ServiceName)
	metrics, err := NewMetrics(meter)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}
	p.metrics = metrics

	return p, nil
}

func (p *Provider) setupMetrics(ctx context.Context, res *sdkresource.Resource) error {
	var reader sdkmetric.Reader

	switch p.config.MetricsExporter {
	case MetricsExporterPrometheus, "":
		p.promRegistry = prometheus.NewRegistry()
		exporter, err := otelprom.New(otelprom.WithRegisterer(p.promRegistry))
		if err != nil {
			return fmt.Errorf("failed to create prometheus exporter: %w", err)
		}
		reader = exporter
	case MetricsExporterOTLP:
		opts := []otlpmetrichttp.Option{}
		if p.config.OTLPEndpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpointURL(p.config.OTLPEndpoint))
		}
		if p.config.OTLPInsecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exporter, err := otlpmetrichttp.New(ctx, opts...)
		if err != nil {
			return fmt.Errorf("failed to create otlp metric exporter: %w", err)
		}
		reader = sdkmetric.NewPeriodicReader(exporter)
	case MetricsExporterStdout:
		exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(os.Stderr))
		if err != nil {
			return fmt.Errorf("failed to create stdout metric exporter: %w", err)
		}
		reader = sdkmetric.NewPeriodicReader(exporter)
	default:
		return fmt.Errorf("unknown metrics exporter %q", p.config.MetricsExporter)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	otel.SetMeterProvider(p.meterProvider)
	return nil
}

func (p *Provider) setupTracing(ctx context.Context, res *sdkresource.Resource) error {
	var exporter sdktrace.SpanExporter

	switch p.config.TracingExporter {
	case TracingExporterNone, "":
		return nil
	case TracingExporterOTLP:
		opts := []otlptracehttp.Option{}
		if p.config.OTLPEndpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpointURL(p.config.OTLPEndpoint))
		}
		if p.config.OTLPInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		var err error
		exporter, err = otlptracehttp.New(ctx, opts...)
		if err != nil {
			return fmt.Errorf("failed to create otlp trace exporter: %w", err)
		}
	case TracingExporterStdout:
		var err error
		exporter, err = stdouttrace.New(stdouttrace.WithWriter(os.Stderr))
		if err != nil {
			return fmt.Errorf("failed to create stdout trace exporter: %w", err)
		}
	default:
		return fmt.Errorf("unknown tracing exporter %q", p.config.TracingExporter)
	}

	p.tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(
			sdktrace.TraceIDRatioBased(p.config.TraceSamplingRate),
		)),
	)
	otel.SetTracerProvider(p.tracerProvider)
	return nil
}

// Enabled reports whether instrumentation is active.
func (p *Provider) Enabled() bool {
	return p.config.Enabled && p.meterProvider != nil
}

// Metrics returns the metric instruments, or nil when disabled.
func (p *Provider) Metrics() *Metrics {
	return p.metrics
}

// MetricsExporter returns the configured metrics exporter name.
func (p *Provider) MetricsExporter() string {
	return p.config.MetricsExporter
}

// TracingExporter returns the configured tracing exporter name.
func (p *Provider) TracingExporter() string {
	return p.config.TracingExporter
}

// PrometheusHandler returns the HTTP handler serving the Prometheus
// registry, or nil when the prometheus exporter is not in use.
func (p *Provider) PrometheusHandler() http.Handler {
	if p.promRegistry == nil {
		return nil
	}
	return promhttp.HandlerFor(p.promRegistry, promhttp.HandlerOpts{})
}

// Recorder returns the gather engine recorder backed by this provider.
func (p *Provider) Recorder() *EngineRecorder {
	return &EngineRecorder{provider: p}
}

// Shutdown flushes and stops the meter and tracer providers.
func (p *Provider) Shutdown(ctx context.Context) error {
	var firstErr error
	if err := p.shutdownMetrics(ctx); err != nil {
		firstErr = err
	}
	if p.tracerProvider != nil {
		if err := p.tracerProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
		p.tracerProvider = nil
	}
	return firstErr
}

func (p *Provider) shutdownMetrics(ctx context.Context) error {
	if p.meterProvider == nil {
		return nil
	}
	err := p.meterProvider.Shutdown(ctx)
	p.meterProvider = nil
	return err
}
