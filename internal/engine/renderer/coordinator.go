// Package renderer coordinates cache probes and tool invocations for
// diagram rendering.
package renderer

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/mmd/internal/core/ports"
)

// Option adjusts a single render call.
type Option func(*renderConfig)

type renderConfig struct {
	timeout  time.Duration
	useCache bool
}

// WithTimeout overrides the configured invocation timeout for one call.
func WithTimeout(d time.Duration) Option {
	return func(cfg *renderConfig) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithoutCache skips the cache probe for one call. Successful results are
// still written back.
func WithoutCache() Option {
	return func(cfg *renderConfig) {
		cfg.useCache = false
	}
}

// Coordinator owns the render pipeline: fingerprint, cache probe, tool
// invocation, write-back. Cache probes run lock-free; only the external
// tool invocation itself is serialized.
type Coordinator struct {
	locator ports.ToolLocator
	cache   ports.ArtifactCache
	invoker ports.Invoker
	logger  ports.Logger
	tracer  ports.Tracer
	timeout time.Duration

	// renderMu serializes invocations of the external tool.
	renderMu sync.Mutex
}

// New creates a Coordinator. A non-positive timeout falls back to the
// default invocation timeout.
func New(
	locator ports.ToolLocator,
	cache ports.ArtifactCache,
	invoker ports.Invoker,
	logger ports.Logger,
	tracer ports.Tracer,
	timeout time.Duration,
) *Coordinator {
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}
	return &Coordinator{
		locator: locator,
		cache:   cache,
		invoker: invoker,
		logger:  logger,
		tracer:  tracer,
		timeout: timeout,
	}
}

// Render renders the diagram source, serving from the cache when possible.
// Every outcome is a RenderResult with the duration stamped from entry to
// return; Render never panics and never returns an error value.
func (c *Coordinator) Render(ctx context.Context, source string, opts ...Option) domain.RenderResult {
	start := time.Now()

	cfg := renderConfig{timeout: c.timeout, useCache: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := c.tracer.Start(ctx, "render")
	defer span.End()

	// The fingerprint binds the result to the tool configured at entry.
	// A concurrent reconfiguration does not retroactively change the key
	// this call reads and writes.
	tool, _ := c.locator.Current()
	key := c.cache.Key(source, tool)

	if cfg.useCache {
		if artifact, ok := c.cache.Get(key); ok {
			span.SetAttribute("cache_hit", true)
			return stamped(domain.Succeeded(artifact), start)
		}
	}
	span.SetAttribute("cache_hit", false)

	if !c.locator.IsConfigured() {
		span.SetAttribute("error_kind", string(domain.ErrorKindToolNotFound))
		return stamped(domain.Failed(domain.ErrorKindToolNotFound, domain.InstallHint), start)
	}

	// Invoke the same tool the fingerprint was computed from, so the
	// write-back key and the producing binary cannot diverge when the
	// locator is reconfigured mid-call. A fresh read happens only on the
	// lazy-discovery path, where no tool was known at entry and the
	// fingerprint carries the empty tool.
	toolPath := tool
	if toolPath == "" {
		toolPath, _ = c.locator.Current()
	}
	span.SetAttribute("tool", toolPath)

	c.renderMu.Lock()
	result := c.invoker.Invoke(ctx, toolPath, source, cfg.timeout)
	c.renderMu.Unlock()

	if result.Success {
		c.cache.Put(key, result.Artifact)
	} else {
		span.SetAttribute("error_kind", string(result.Kind))
	}

	return stamped(result, start)
}

// SelfTest renders the built-in sample diagram, exercising the whole
// pipeline end to end.
func (c *Coordinator) SelfTest(ctx context.Context) domain.RenderResult {
	return c.Render(ctx, domain.SampleDiagram)
}

// DiscoverTool searches the executable search path for the renderer binary.
func (c *Coordinator) DiscoverTool() (string, bool) {
	return c.locator.Discover()
}

// SetToolPath configures an explicit renderer binary path.
func (c *Coordinator) SetToolPath(path string) bool {
	return c.locator.SetExplicit(path)
}

// CurrentTool returns the configured renderer path without re-discovering.
func (c *Coordinator) CurrentTool() (string, bool) {
	return c.locator.Current()
}

// IsConfigured reports whether a renderer binary is known, discovering
// lazily if none is yet set.
func (c *Coordinator) IsConfigured() bool {
	return c.locator.IsConfigured()
}

func stamped(result domain.RenderResult, start time.Time) domain.RenderResult {
	result.Duration = time.Since(start)
	return result
}
