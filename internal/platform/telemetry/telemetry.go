// Package telemetry wires OpenTelemetry for the service: a tracer and a meter
// provider exporting to stdout in development or OTLP/HTTP elsewhere, and the
// service's own instruments (HTTP requests, store transactions, authorization
// decisions).
//
//	p, err := telemetry.Setup(ctx, telemetry.Settings{ServiceName: "taskflow-service", Exporter: "stdout"})
//	defer p.Shutdown(ctx)
//	p.Metrics.RecordTx(ctx, "postgres", telemetry.ResultSuccess, elapsed)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted in Settings.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Settings selects where telemetry goes.
type Settings struct {
	ServiceName string
	Exporter    string
	// Endpoint is the collector URL for the otlp exporter, e.g.
	// http://otel-collector:4318. An https scheme turns TLS on.
	Endpoint string
}

// Providers owns the SDK providers registered globally by Setup. A nil
// *Providers is what the service runs with when telemetry is off.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup builds both providers, installs them as the otel globals together
// with the W3C trace-context and baggage propagators, and registers the
// service instruments.
func Setup(ctx context.Context, s Settings) (*Providers, error) {
	res, err := resource.Merge(resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(s.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}
	target, err := parseTarget(s.Exporter, s.Endpoint)
	if err != nil {
		return nil, err
	}

	spans, err := target.spanExporter(ctx)
	if err != nil {
		return nil, fmt.Errorf("span exporter: %w", err)
	}
	p := &Providers{Tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))}

	readings, err := target.metricExporter(ctx)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("metric exporter: %w", err)
	}
	p.Meter = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
		sdkmetric.WithResource(res),
	)

	if p.Metrics, err = NewMetrics(p.Meter, s.ServiceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes and stops whatever Setup started.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter: %w", err))
		}
	}
	return errors.Join(errs...)
}

// target is a validated exporter choice.
type target struct {
	otlp     bool
	host     string
	insecure bool
}

func parseTarget(exporter, endpoint string) (target, error) {
	switch exporter {
	case ExporterStdout:
		return target{}, nil
	case ExporterOTLP:
		if endpoint == "" {
			return target{}, errors.New("otlp exporter requires an endpoint")
		}
		t := target{otlp: true, host: endpoint, insecure: true}
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			t.host = u.Host
			t.insecure = u.Scheme != "https"
		}
		return t, nil
	default:
		return target{}, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func (t target) spanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if !t.otlp {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(t.host)}
	if t.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (t target) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	if !t.otlp {
		return stdoutmetric.New()
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(t.host)}
	if t.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}
