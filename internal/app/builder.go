package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seam/adapters/config"
	"go.trai.ch/seam/adapters/logger"
	"go.trai.ch/seam/adapters/teaview"
	"go.trai.ch/seam/adapters/telemetry"
	"go.trai.ch/seam/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app"

// Components bundles the fully wired application with the pieces the
// entry point needs alongside it.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			teaview.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			adapter, err := graft.Dep[ports.PlatformAdapter](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(settings, config.NewLoader(log), adapter, log, tracer),
				Logger: log,
			}, nil
		},
	})
}
