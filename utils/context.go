package utils

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
	ContextKeyOpenTelemetryTracer
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreOpenTelemetryTracerInContext(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, ContextKeyOpenTelemetryTracer, tracer)
}

func OpenTelemetryTracerFromContext(ctx context.Context) trace.Tracer {
	tracer, found := ctx.Value(ContextKeyOpenTelemetryTracer).(trace.Tracer)
	if !found {
		return noop.NewTracerProvider().Tracer("noop")
	}
	return tracer
}
