package renderer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mmd/internal/adapters/cache"
	"go.trai.ch/mmd/internal/adapters/config"
	"go.trai.ch/mmd/internal/adapters/locator"
	"go.trai.ch/mmd/internal/adapters/logger"
	"go.trai.ch/mmd/internal/adapters/mermaid"
	"go.trai.ch/mmd/internal/adapters/telemetry"
	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/mmd/internal/core/ports"
)

// NodeID is the unique identifier for the render coordinator Graft node.
const NodeID graft.ID = "engine.renderer"

func init() {
	graft.Register(graft.Node[*Coordinator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			locator.NodeID,
			cache.NodeID,
			mermaid.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Coordinator, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			toolLocator, err := graft.Dep[ports.ToolLocator](ctx)
			if err != nil {
				return nil, err
			}
			artifactCache, err := graft.Dep[ports.ArtifactCache](ctx)
			if err != nil {
				return nil, err
			}
			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(toolLocator, artifactCache, invoker, log, tracer, settings.Timeout), nil
		},
	})
}
