package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCorrelationID ties together every line emitted by one CLI invocation.
	FieldCorrelationID = "correlation_id"
	// FieldSourceFile is the content tree a line refers to.
	FieldSourceFile = "source_file"
	// FieldOutputPath is the document a line refers to.
	FieldOutputPath = "output_path"
)

type contextKey int

const (
	correlationIDKey contextKey = iota
	sourceFileKey
)

// WithCorrelationID returns a context carrying the run's correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromContext returns the correlation id, if any.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(correlationIDKey).(string)
	return id, ok && id != ""
}

// WithSourceFile returns a context naming the content tree being processed.
func WithSourceFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, sourceFileKey, path)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := CorrelationIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCorrelationID, id))
	}
	if path, ok := ctx.Value(sourceFileKey).(string); ok && path != "" {
		fields = append(fields, slog.String(FieldSourceFile, path))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
