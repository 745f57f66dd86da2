package ports

import (
	"context"
	"time"

	"go.trai.ch/mmd/internal/core/domain"
)

// Invoker executes the external renderer against one source text.
//
// Invoke never returns an error: every outcome, including a missing binary,
// a timeout, or an internal fault, is captured in the RenderResult. The
// invoker leaves Duration zero; the coordinator stamps it.
//
//go:generate mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	Invoke(ctx context.Context, toolPath, source string, timeout time.Duration) domain.RenderResult
}
