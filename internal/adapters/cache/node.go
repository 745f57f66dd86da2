package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mmd/internal/adapters/config"
	"go.trai.ch/mmd/internal/adapters/logger"
	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/mmd/internal/core/ports"
)

// NodeID is the unique identifier for the artifact cache Graft node.
const NodeID graft.ID = "adapter.artifact_cache"

func init() {
	graft.Register(graft.Node[ports.ArtifactCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactCache, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewStore(settings.CacheDir, settings.Format, log), nil
		},
	})
}
