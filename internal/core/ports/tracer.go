package ports

import "context"

// Tracer is the abstraction for emitting spans around render operations.
// It decouples the engine from the telemetry backend; the default backend
// is a no-op.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start creates a new span. The returned context carries the span for
	// child operations.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one traced operation.
type Span interface {
	// End completes the span.
	End()

	// RecordError records an error for the span.
	RecordError(err error)

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
