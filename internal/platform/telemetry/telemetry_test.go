package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/telemetry"
)

// Setup replaces the otel globals, so these tests restore them and stay serial.
func keepGlobals(t *testing.T) {
	t.Helper()
	tp, mp, prop := otel.GetTracerProvider(), otel.GetMeterProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(mp)
		otel.SetTextMapPropagator(prop)
	})
}

func TestSetup_Stdout(t *testing.T) {
	keepGlobals(t)
	ctx := context.Background()

	p, err := telemetry.Setup(ctx, telemetry.Settings{ServiceName: "test", Exporter: telemetry.ExporterStdout})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(func() {
		if err := p.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown: %v", err)
		}
	})

	if p.Tracer == nil || p.Meter == nil || p.Metrics == nil {
		t.Fatalf("providers = %+v, want all set", p)
	}
	if otel.GetTracerProvider() != p.Tracer {
		t.Error("global tracer provider not installed")
	}
	fields := otel.GetTextMapPropagator().Fields()
	want := map[string]bool{"traceparent": false, "baggage": false}
	for _, f := range fields {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("propagator does not carry %s", f)
		}
	}
}

func TestSetup_OTLP(t *testing.T) {
	keepGlobals(t)

	for _, endpoint := range []string{"http://localhost:4318", "https://collector.example:4318", "localhost:4318"} {
		t.Run(endpoint, func(t *testing.T) {
			ctx := context.Background()
			p, err := telemetry.Setup(ctx, telemetry.Settings{
				ServiceName: "test",
				Exporter:    telemetry.ExporterOTLP,
				Endpoint:    endpoint,
			})
			if err != nil {
				t.Fatalf("Setup(%s): %v", endpoint, err)
			}
			// No collector listens here; the final flush is allowed to fail.
			t.Cleanup(func() { _ = p.Shutdown(ctx) })
		})
	}
}

func TestSetup_Rejects(t *testing.T) {
	tests := []struct {
		name string
		s    telemetry.Settings
	}{
		{"unknown exporter", telemetry.Settings{ServiceName: "test", Exporter: "zipkin"}},
		{"otlp without endpoint", telemetry.Settings{ServiceName: "test", Exporter: telemetry.ExporterOTLP}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keepGlobals(t)
			if p, err := telemetry.Setup(context.Background(), tt.s); err == nil {
				_ = p.Shutdown(context.Background())
				t.Fatal("Setup returned nil error")
			}
		})
	}
}

func TestProviders_NilShutdown(t *testing.T) {
	t.Parallel()

	var p *telemetry.Providers
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("nil Shutdown = %v, want nil", err)
	}
}
