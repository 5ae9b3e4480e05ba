package otel

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

// Setup configures logging and, when TELEMETRY is set, OTLP export of logs,
// traces and metrics. Exporter endpoints follow the standard OTEL_* variables.
func Setup(ctx context.Context, name, version string) error {
	if !EnableTelemetry {
		level := slog.LevelInfo

		if EnableDebug {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		return nil
	}

	resource, err := sdkresource.New(ctx,
		sdkresource.WithFromEnv(),
		sdkresource.WithTelemetrySDK(),
		sdkresource.WithAttributes(
			semconv.ServiceName(name),
			semconv.ServiceVersion(version),
		),
	)

	if err != nil {
		return err
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return errors.Join(
		setupLogger(ctx, resource),
		setupTracer(ctx, resource),
		setupMeter(ctx, resource),
	)
}
