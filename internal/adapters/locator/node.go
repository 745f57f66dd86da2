package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mmd/internal/adapters/config"
	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/mmd/internal/core/ports"
)

// NodeID is the unique identifier for the tool locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.ToolLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ToolLocator, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			l := New(settings.ToolName)
			if settings.ToolPath != "" {
				l.SetExplicit(settings.ToolPath)
			}
			return l, nil
		},
	})
}
