package mermaid

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mmd/internal/adapters/config"
	"go.trai.ch/mmd/internal/adapters/logger"
	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/mmd/internal/core/ports"
)

// NodeID is the unique identifier for the render invoker Graft node.
const NodeID graft.ID = "adapter.invoker"

func init() {
	graft.Register(graft.Node[ports.Invoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Invoker, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewInvoker(settings.Format, log), nil
		},
	})
}
