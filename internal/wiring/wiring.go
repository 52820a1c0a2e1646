// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/seam/adapters/config"
	_ "go.trai.ch/seam/adapters/logger"
	_ "go.trai.ch/seam/adapters/teaview"
	_ "go.trai.ch/seam/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/seam/internal/app"
)
