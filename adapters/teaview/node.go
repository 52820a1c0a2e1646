package teaview

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seam/adapters/logger"
	"go.trai.ch/seam/ports"
)

// NodeID is the unique identifier for the platform adapter Graft node.
const NodeID graft.ID = "adapter.teaview"

func init() {
	graft.Register(graft.Node[ports.PlatformAdapter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PlatformAdapter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
