package telemetry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

const (
	serviceName    = "tictactoe-minimax"
	serviceVersion = "v0.1.0"

	shutdownTimeout = 5 * time.Second
)

type Options struct {
	// TraceFile receives one JSON document per finished span. Tracing is off when empty.
	TraceFile string
	// MetricsFile receives the collected metrics on shutdown. Metrics are off when empty.
	MetricsFile string
}

// InitOtel installs the global tracer and meter providers. The returned
// function flushes and closes everything it opened.
func InitOtel(opts Options) (func(context.Context) error, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var shutdownFuncs []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		var errs error
		for i := len(shutdownFuncs) - 1; i >= 0; i-- {
			errs = errors.Join(errs, shutdownFuncs[i](ctx))
		}

		return errs
	}

	// --- Setup Traces ---
	if opts.TraceFile != "" {
		traceOut, err := openOutput(opts.TraceFile)
		if err != nil {
			return nil, err
		}
		shutdownFuncs = append(shutdownFuncs, closeFile(traceOut))

		traceExporter, err := stdouttrace.New(stdouttrace.WithWriter(traceOut))
		if err != nil {
			return nil, errors.Join(fmt.Errorf("failed to create trace exporter: %w", err), shutdown(context.Background()))
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(traceExporter),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
		shutdownFuncs = append(shutdownFuncs, func(ctx context.Context) error {
			if err := tp.Shutdown(ctx); err != nil {
				return fmt.Errorf("failed to shutdown TracerProvider: %w", err)
			}

			return nil
		})
	}

	// --- Setup Metrics ---
	if opts.MetricsFile != "" {
		metricsOut, err := openOutput(opts.MetricsFile)
		if err != nil {
			return nil, errors.Join(err, shutdown(context.Background()))
		}
		shutdownFuncs = append(shutdownFuncs, closeFile(metricsOut))

		metricExporter, err := stdoutmetric.New(stdoutmetric.WithWriter(metricsOut))
		if err != nil {
			return nil, errors.Join(fmt.Errorf("failed to create metric exporter: %w", err), shutdown(context.Background()))
		}

		mp := metric.NewMeterProvider(
			metric.WithReader(metric.NewPeriodicReader(metricExporter)),
			metric.WithResource(res),
		)
		otel.SetMeterProvider(mp)
		shutdownFuncs = append(shutdownFuncs, func(ctx context.Context) error {
			if err := mp.Shutdown(ctx); err != nil {
				return fmt.Errorf("failed to shutdown MeterProvider: %w", err)
			}

			return nil
		})
	}

	return shutdown, nil
}

func openOutput(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open telemetry output %q: %w", path, err)
	}

	return file, nil
}

func closeFile(file *os.File) func(context.Context) error {
	return func(context.Context) error {
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close %q: %w", file.Name(), err)
		}

		return nil
	}
}
