package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

const instrumentationName = "github.com/jsamuelsen11/taskflow-service"

// Metric attribute keys.
var (
	AttrHTTPMethod   = attribute.Key("http.method")
	AttrHTTPRoute    = attribute.Key("http.route")
	AttrHTTPStatus   = attribute.Key("http.status_code")
	AttrStoreBackend = attribute.Key("store.backend")
	AttrOperation    = attribute.Key("operation")
	AttrRole         = attribute.Key("role")
	AttrResult       = attribute.Key("result")
)

// Values of AttrResult.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultCircuitOpen = "circuit_open"
	ResultAllowed     = "allowed"
	ResultDenied      = "denied"
)

// Metrics are the service's instruments. Every Record method is a no-op on a
// nil *Metrics.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	StoreTxDuration       metric.Float64Histogram
	StoreTxTotal          metric.Int64Counter
	AuthzDecisionTotal    metric.Int64Counter
}

// NewMetrics registers the instruments on mp.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(instrumentationName,
		metric.WithInstrumentationAttributes(semconv.ServiceName(serviceName)))

	var (
		m   Metrics
		err error
	)
	histogram := func(name, desc string) metric.Float64Histogram {
		if err != nil {
			return nil
		}
		var h metric.Float64Histogram
		if h, err = meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s")); err != nil {
			err = fmt.Errorf("instrument %s: %w", name, err)
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		if err != nil {
			return nil
		}
		var c metric.Int64Counter
		if c, err = meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit)); err != nil {
			err = fmt.Errorf("instrument %s: %w", name, err)
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Time to serve an HTTP request")
	m.ServerRequestTotal = counter("http.server.request.total", "HTTP requests served", "{request}")
	m.StoreTxDuration = histogram("store.tx.duration", "Time spent in a store transaction")
	m.StoreTxTotal = counter("store.tx.total", "Store transactions run", "{transaction}")
	m.AuthzDecisionTotal = counter("authz.decision.total", "Policy decisions taken", "{decision}")
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordServerRequest records one served HTTP request. route is the matched
// chi pattern, empty when nothing matched.
func (m *Metrics) RecordServerRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatus.Int(status),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// RecordTx records one store transaction.
func (m *Metrics) RecordTx(ctx context.Context, backend, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(AttrStoreBackend.String(backend), AttrResult.String(result))
	m.StoreTxDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.StoreTxTotal.Add(ctx, 1, attrs)
}

// RecordDecision records one authorization decision.
func (m *Metrics) RecordDecision(ctx context.Context, operation, role string, allowed bool) {
	if m == nil {
		return
	}
	result := ResultDenied
	if allowed {
		result = ResultAllowed
	}
	m.AuthzDecisionTotal.Add(ctx, 1, metric.WithAttributes(
		AttrOperation.String(operation),
		AttrRole.String(role),
		AttrResult.String(result),
	))
}
