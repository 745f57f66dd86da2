// Package domain holds the core value types for the render engine.
package domain

import "time"

// ErrorKind classifies a failed render attempt. Every failure the engine can
// produce maps to exactly one kind; callers switch on it to decide how to
// present the failure.
type ErrorKind string

const (
	// ErrorKindNone is the zero kind carried by successful results.
	ErrorKindNone ErrorKind = ""

	// ErrorKindToolNotFound means no renderer binary is discoverable or
	// configured, or the binary disappeared before launch.
	ErrorKindToolNotFound ErrorKind = "tool_not_found"

	// ErrorKindTimeout means the invocation exceeded its deadline and the
	// process was killed.
	ErrorKindTimeout ErrorKind = "timeout"

	// ErrorKindToolError means the process exited non-zero without producing
	// a usable artifact.
	ErrorKindToolError ErrorKind = "tool_error"

	// ErrorKindInvalidOutput means the process exited zero but produced no
	// recognizable artifact.
	ErrorKindInvalidOutput ErrorKind = "invalid_output"

	// ErrorKindInternal means an unexpected local failure (I/O, resource
	// exhaustion) occurred while orchestrating the invocation.
	ErrorKindInternal ErrorKind = "internal_error"
)

// RenderResult is the outcome of one render attempt. It is a plain value:
// failures are data, never panics, and nothing beyond this struct crosses the
// engine's public boundary.
//
// Duration is stamped by the coordinator for the whole call (cache lookup
// plus any invocation); the invoker leaves it zero.
type RenderResult struct {
	Success     bool
	Artifact    string
	Kind        ErrorKind
	Message     string
	Diagnostics string
	Duration    time.Duration
}

// Succeeded builds a successful result carrying the artifact.
func Succeeded(artifact string) RenderResult {
	return RenderResult{Success: true, Artifact: artifact}
}

// Failed builds a failed result of the given kind.
func Failed(kind ErrorKind, message string) RenderResult {
	return RenderResult{Kind: kind, Message: message}
}

// FailedWithDiagnostics builds a failed result that also carries the tool's
// captured stderr for display.
func FailedWithDiagnostics(kind ErrorKind, message, diagnostics string) RenderResult {
	return RenderResult{Kind: kind, Message: message, Diagnostics: diagnostics}
}

// SampleDiagram is the built-in diagram used by the self test to validate the
// tool and cache path end to end without user content.
const SampleDiagram = "flowchart TD\n  A[Start] --> B[End]\n"
